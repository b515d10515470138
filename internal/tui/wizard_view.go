package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/wizard"
)

type wizardState struct {
	role model.Role
	w    *wizard.Wizard

	// defs/inputs describe the currently visible fields of the current step.
	defs   []wizard.FieldDef
	inputs []textinput.Model
	focus  int

	done bool
}

func (m *appModel) startWizard() {
	steps := wizard.StepsFor(string(m.loginRole))
	if steps == nil {
		return
	}
	ws := &wizardState{role: m.loginRole, w: wizard.New(steps)}
	ws.rebuildStep()
	m.wiz = ws
	m.view = viewRegister
	m.errMsg = ""
	m.statusMsg = ""
}

// rebuildStep re-derives the visible fields and their inputs from the wizard
// state. Called on entry and after every step or companion-field change.
func (ws *wizardState) rebuildStep() {
	step := ws.w.StepDef()
	ws.defs = ws.defs[:0]
	for _, fd := range step.Fields {
		if fd.OnlyWhen != "" && ws.w.Get(fd.OnlyWhen).Text() != fd.OnlyWhenEquals {
			continue
		}
		ws.defs = append(ws.defs, fd)
	}

	ws.inputs = make([]textinput.Model, len(ws.defs))
	for i, fd := range ws.defs {
		ti := textinput.New()
		ti.CharLimit = 200
		switch fd.Kind {
		case wizard.FieldPassword:
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
			ti.SetValue(ws.w.Get(fd.Name).Text())
		case wizard.FieldFile:
			ti.Placeholder = "path to file"
			ti.SetValue(ws.w.Get(fd.Name).Path())
		case wizard.FieldSelect:
			// Selects render from the wizard value directly. A stale value
			// left over from a companion change is dropped.
			opts := fd.SelectOptions(ws.w.Fields())
			if cur := ws.w.Get(fd.Name).Text(); cur != "" && !containsString(opts, cur) {
				ws.w.Set(fd.Name, wizard.Text(""))
			}
		default:
			ti.SetValue(ws.w.Get(fd.Name).Text())
		}
		ws.inputs[i] = ti
	}
	if ws.focus >= len(ws.defs) {
		ws.focus = 0
	}
	ws.refocus()
}

func (ws *wizardState) refocus() {
	for i := range ws.inputs {
		if i == ws.focus {
			ws.inputs[i].Focus()
		} else {
			ws.inputs[i].Blur()
		}
	}
}

// syncFocused writes the focused input back into the wizard's field map.
func (ws *wizardState) syncFocused() {
	if ws.focus >= len(ws.defs) {
		return
	}
	fd := ws.defs[ws.focus]
	switch fd.Kind {
	case wizard.FieldSelect:
		// Already written through on cycle.
	case wizard.FieldFile:
		ws.w.Set(fd.Name, wizard.File(strings.TrimSpace(ws.inputs[ws.focus].Value())))
	default:
		ws.w.Set(fd.Name, wizard.Text(ws.inputs[ws.focus].Value()))
	}
}

func (ws *wizardState) cycleSelect(delta int) {
	fd := ws.defs[ws.focus]
	if fd.Kind != wizard.FieldSelect {
		return
	}
	opts := fd.SelectOptions(ws.w.Fields())
	if len(opts) == 0 {
		return
	}
	cur := ws.w.Get(fd.Name).Text()
	idx := -1
	for i, opt := range opts {
		if opt == cur {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(opts) - 1
	}
	if idx >= len(opts) {
		idx = 0
	}
	ws.w.Set(fd.Name, wizard.Text(opts[idx]))
	// Companion fields and dependent option lists may have changed.
	ws.rebuildStep()
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	ws := m.wiz
	if ws == nil {
		m.view = viewRoleSelect
		return m, nil
	}
	if ws.done {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		ws.syncFocused()
		if !ws.w.Back() {
			m.wiz = nil
			m.view = viewRoleSelect
			return m, nil
		}
		ws.focus = 0
		ws.rebuildStep()
		return m, nil

	case "tab", "down":
		ws.syncFocused()
		if ws.focus < len(ws.defs)-1 {
			ws.focus++
		}
		ws.refocus()
		return m, nil

	case "shift+tab", "up":
		ws.syncFocused()
		if ws.focus > 0 {
			ws.focus--
		}
		ws.refocus()
		return m, nil

	case "left":
		ws.cycleSelect(-1)
		return m, nil

	case "right":
		ws.cycleSelect(1)
		return m, nil

	case "enter":
		ws.syncFocused()
		if ws.focus < len(ws.defs)-1 {
			ws.focus++
			ws.refocus()
			return m, nil
		}
		if ws.w.OnLastStep() {
			fields, ok := ws.w.Submit()
			if !ok {
				return m, nil
			}
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.registerCmd(ws.role, fields)
		}
		if ws.w.Next() {
			ws.focus = 0
			ws.rebuildStep()
		}
		return m, nil
	}

	if ws.focus < len(ws.inputs) && ws.defs[ws.focus].Kind != wizard.FieldSelect {
		var cmd tea.Cmd
		ws.inputs[ws.focus], cmd = ws.inputs[ws.focus].Update(msg)
		ws.syncFocused()
		return m, cmd
	}
	return m, nil
}

func (m appModel) viewWizard() string {
	ws := m.wiz
	if ws == nil {
		return ""
	}
	if ws.done {
		return m.header(roleTitle(ws.role)+" Registration") + "\n" +
			styleSuccess().Render("Registration submitted.") + "\n" +
			styleMuted().Render("Redirecting to login...")
	}

	step := ws.w.StepDef()
	var b strings.Builder
	b.WriteString(m.header(roleTitle(ws.role) + " Registration"))
	b.WriteString(fmt.Sprintf("\n%s  %s\n\n",
		step.Title,
		styleMuted().Render(fmt.Sprintf("step %d/%d", ws.w.Step(), ws.w.Steps()))))

	for i, fd := range ws.defs {
		label := fd.Label
		if i == ws.focus {
			label = "> " + label
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n")

		if fd.Kind == wizard.FieldSelect {
			val := ws.w.Get(fd.Name).Text()
			if val == "" {
				opts := fd.SelectOptions(ws.w.Fields())
				hint := "(left/right to choose)"
				if len(opts) > 0 {
					hint = "(left/right to choose: " + strings.Join(opts, ", ") + ")"
				}
				val = styleMuted().Render(hint)
			}
			b.WriteString("  " + val + "\n")
		} else {
			b.WriteString("  " + ws.inputs[i].View() + "\n")
		}

		if msg := ws.w.Err(fd.Name); msg != "" {
			b.WriteString("  " + styleError().Render(msg) + "\n")
		}
	}

	if msg := ws.w.Err("submit"); msg != "" {
		b.WriteString("\n" + styleError().Render(msg) + "\n")
	}
	if m.busy {
		b.WriteString("\n" + styleMuted().Render("Submitting..."))
	}

	action := "next step"
	if ws.w.OnLastStep() {
		action = "submit"
	}
	b.WriteString("\n" + styleMuted().Render("enter: "+action+"   tab: next field   esc: previous step"))
	return b.String()
}
