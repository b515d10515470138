package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

type loginState struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginState{email: email, password: password}
}

func (m appModel) updateRoleSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k", "ctrl+p":
		if m.roleIdx > 0 {
			m.roleIdx--
		}
	case "down", "j", "ctrl+n":
		if m.roleIdx < len(roleOrder)-1 {
			m.roleIdx++
		}
	case "enter":
		m.loginRole = roleOrder[m.roleIdx]
		m.view = viewLogin
		m.errMsg = ""
		m.statusMsg = ""
	case "r":
		m.loginRole = roleOrder[m.roleIdx]
		m.startWizard()
	case "f":
		m.view = viewForgot
		m.errMsg = ""
		m.statusMsg = ""
	}
	return m, nil
}

func (m appModel) viewRoleSelect() string {
	var b strings.Builder
	b.WriteString(m.header("Internship Allotment"))
	b.WriteString("\nWho are you?\n\n")

	labels := []string{"Student", "Organization", "Admin"}
	for i, label := range labels {
		line := "  " + label
		if i == m.roleIdx {
			line = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(" > " + label + " ")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("enter: log in   r: register   f: forgot password   q: quit"))
	return b.String()
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.view = viewRoleSelect
		m.errMsg = ""
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.login.focus = 1 - m.login.focus
		if m.login.focus == 0 {
			m.login.email.Focus()
			m.login.password.Blur()
		} else {
			m.login.email.Blur()
			m.login.password.Focus()
		}
		return m, nil
	case "f":
		// Only from the password row; typing "f" into the email belongs there.
		if m.login.focus == 1 && m.login.password.Value() == "" {
			m.view = viewForgot
			return m, nil
		}
	case "enter":
		email := strings.TrimSpace(m.login.email.Value())
		password := m.login.password.Value()
		if email == "" || password == "" {
			m.errMsg = "Email and password are required."
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.loginCmd(m.loginRole, email, password)
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.header(roleTitle(m.loginRole) + " Login"))
	b.WriteString("\n")
	b.WriteString("Email\n" + m.login.email.View() + "\n\n")
	b.WriteString("Password\n" + m.login.password.View() + "\n\n")
	if m.busy {
		b.WriteString(styleMuted().Render("Logging in...") + "\n")
	}
	b.WriteString(styleMuted().Render("enter: log in   tab: next field   esc: back"))
	return b.String()
}

func roleTitle(r model.Role) string {
	switch r {
	case model.RoleStudent:
		return "Student"
	case model.RoleOrganization:
		return "Organization"
	case model.RoleAdmin:
		return "Admin"
	}
	return string(r)
}
