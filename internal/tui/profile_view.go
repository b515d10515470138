package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

// Editable subset of the student profile. Identity fields (name, email,
// student id) only change through re-registration.
var profileFields = []struct {
	name  string
	label string
}{
	{"contact", "Contact Number"},
	{"altEmail", "Alternate Email"},
	{"currentAddress", "Current Address"},
	{"permanentAddress", "Permanent Address"},
	{"semester", "Semester"},
	{"skills", "Skills"},
}

type profileState struct {
	student model.Student
	raw     map[string]any

	inputs   []textinput.Model
	focus    int
	localErr string
}

func newProfileState(student model.Student, raw map[string]any) profileState {
	p := profileState{
		student: student,
		raw:     raw,
		inputs:  make([]textinput.Model, len(profileFields)),
	}
	// Login responses may omit the display fields; the profile document
	// always carries them.
	if p.student.FullName == "" {
		if v, ok := raw["fullName"]; ok && v != nil {
			p.student.FullName = fmt.Sprint(v)
		}
	}
	if p.student.Email == "" {
		if v, ok := raw["email"]; ok && v != nil {
			p.student.Email = fmt.Sprint(v)
		}
	}
	for i, fd := range profileFields {
		ti := textinput.New()
		ti.CharLimit = 200
		if v, ok := raw[fd.name]; ok && v != nil {
			ti.SetValue(fmt.Sprint(v))
		}
		p.inputs[i] = ti
	}
	p.inputs[0].Focus()
	return p
}

func (p *profileState) refocus() {
	for i := range p.inputs {
		if i == p.focus {
			p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
}

func (p *profileState) fields() map[string]string {
	out := make(map[string]string, len(profileFields))
	for i, fd := range profileFields {
		out[fd.name] = strings.TrimSpace(p.inputs[i].Value())
	}
	return out
}

func (m appModel) loadProfileCmd(studentID int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		raw, err := client.StudentProfile(context.Background(), studentID)
		return profileLoadedMsg{profile: raw, err: err}
	}
}

func (m appModel) saveProfileCmd(studentID int64, fields map[string]string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return profileSavedMsg{err: client.UpdateStudentProfile(context.Background(), studentID, fields)}
	}
}

func tenDigitsOrEmpty(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := &m.profile

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	// Still fetching: only navigation keys apply.
	if len(p.inputs) == 0 {
		if key.String() == "esc" {
			m.view = viewRoleSelect
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.view = viewRoleSelect
		m.statusMsg = ""
		return m, nil
	case "ctrl+o":
		m.view = viewRoleSelect
		m.statusMsg = "Logged out."
		return m, m.logoutCmd()
	case "tab", "down":
		if p.focus < len(p.inputs)-1 {
			p.focus++
		}
		p.refocus()
		return m, nil
	case "shift+tab", "up":
		if p.focus > 0 {
			p.focus--
		}
		p.refocus()
		return m, nil
	case "enter":
		if p.focus < len(p.inputs)-1 {
			p.focus++
			p.refocus()
			return m, nil
		}
		fields := p.fields()
		if !tenDigitsOrEmpty(fields["contact"]) {
			p.localErr = "Contact number must be exactly 10 digits."
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		p.localErr = ""
		m.busy = true
		return m, m.saveProfileCmd(p.student.StudentID, fields)
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewProfile() string {
	p := m.profile
	var b strings.Builder
	b.WriteString(m.header("Student Profile"))
	b.WriteString("\n")
	b.WriteString(p.student.FullName + "  " + styleMuted().Render(p.student.Email) + "\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf("student id %d", p.student.StudentID)) + "\n\n")

	if len(p.inputs) == 0 {
		b.WriteString(styleMuted().Render("Loading profile...") + "\n")
		return b.String()
	}

	for i, fd := range profileFields {
		label := "  " + fd.label
		if i == p.focus {
			label = "> " + fd.label
		}
		b.WriteString(label + "\n  " + p.inputs[i].View() + "\n")
	}

	if p.localErr != "" {
		b.WriteString("\n" + styleError().Render(p.localErr))
	}
	if m.busy {
		b.WriteString("\n" + styleMuted().Render("Saving..."))
	}
	b.WriteString("\n" + styleMuted().Render("enter: save   tab: next field   ctrl+o: log out   esc: back"))
	return b.String()
}
