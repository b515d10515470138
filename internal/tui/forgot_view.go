package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/poll"
	"github.com/hy461283-sudo/intership-allotment/internal/wizard"
)

type forgotStage int

const (
	forgotStageEmail forgotStage = iota
	forgotStageWaiting
	forgotStageNewPassword
	forgotStageDone
)

type forgotState struct {
	stage forgotStage

	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focus    int

	status   model.ResetStatus
	token    string
	deadline time.Time
	localErr string
}

func newForgotState() forgotState {
	email := textinput.New()
	email.Placeholder = "account email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "new password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "confirm new password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return forgotState{email: email, password: password, confirm: confirm}
}

func (m appModel) forgotCmd(email string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return forgotDoneMsg{err: client.ForgotPassword(context.Background(), email)}
	}
}

func (m appModel) resetCmd(token, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return resetDoneMsg{err: client.ResetPassword(context.Background(), token, password)}
	}
}

func nextResetTick() tea.Cmd {
	return tea.Tick(poll.DefaultInterval, func(time.Time) tea.Msg {
		return resetTickMsg{}
	})
}

func (m appModel) updateForgot(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.forgot

	switch msg := msg.(type) {
	case forgotDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		f.stage = forgotStageWaiting
		f.status = model.ResetPending
		f.deadline = time.Now().Add(poll.DefaultMaxWait)
		return m, m.checkResetCmd(strings.TrimSpace(f.email.Value()))

	case resetPollMsg:
		if msg.err == nil {
			f.status = msg.status
			switch {
			case msg.status == model.ResetApproved:
				f.token = msg.token
				f.stage = forgotStageNewPassword
				f.focus = 0
				f.password.Focus()
				f.confirm.Blur()
				return m, nil
			case msg.status.Terminal():
				f.stage = forgotStageDone
				return m, nil
			}
		}
		// A failed round counts as "still pending"; keep ticking until
		// the deadline passes.
		if time.Now().After(f.deadline) {
			m.errMsg = poll.ErrTimedOut.Error()
			f.stage = forgotStageEmail
			return m, nil
		}
		return m, nextResetTick()

	case resetTickMsg:
		if f.stage != forgotStageWaiting {
			return m, nil
		}
		return m, m.checkResetCmd(strings.TrimSpace(f.email.Value()))

	case resetDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.forgot = newForgotState()
		m.view = viewLogin
		m.statusMsg = "Password reset. Log in with the new password."
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch f.stage {
	case forgotStageEmail:
		switch key.String() {
		case "esc":
			m.view = viewRoleSelect
			m.errMsg = ""
			return m, nil
		case "enter":
			email := strings.TrimSpace(f.email.Value())
			if email == "" {
				m.errMsg = "Email is required."
				return m, nil
			}
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, m.forgotCmd(email)
		}
		var cmd tea.Cmd
		f.email, cmd = f.email.Update(msg)
		return m, cmd

	case forgotStageWaiting:
		if key.String() == "esc" {
			f.stage = forgotStageEmail
			return m, nil
		}
		return m, nil

	case forgotStageNewPassword:
		switch key.String() {
		case "esc":
			m.forgot = newForgotState()
			m.view = viewRoleSelect
			return m, nil
		case "tab", "shift+tab", "up", "down":
			f.focus = 1 - f.focus
			if f.focus == 0 {
				f.password.Focus()
				f.confirm.Blur()
			} else {
				f.password.Blur()
				f.confirm.Focus()
			}
			return m, nil
		case "enter":
			pw := f.password.Value()
			if !wizard.StrongPassword(pw) {
				f.localErr = "Password must be 8+ chars with uppercase, lowercase, number and symbol (@$!%*?&#^)."
				return m, nil
			}
			if pw != f.confirm.Value() {
				f.localErr = "Passwords do not match."
				return m, nil
			}
			if m.busy {
				return m, nil
			}
			f.localErr = ""
			m.busy = true
			return m, m.resetCmd(f.token, pw)
		}
		var cmd tea.Cmd
		if f.focus == 0 {
			f.password, cmd = f.password.Update(msg)
		} else {
			f.confirm, cmd = f.confirm.Update(msg)
		}
		return m, cmd

	case forgotStageDone:
		if key.String() == "esc" || key.String() == "enter" {
			m.forgot = newForgotState()
			m.view = viewRoleSelect
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) viewForgot() string {
	f := m.forgot
	var b strings.Builder
	b.WriteString(m.header("Forgot Password"))
	b.WriteString("\n")

	switch f.stage {
	case forgotStageEmail:
		b.WriteString("Account email\n" + f.email.View() + "\n\n")
		if m.busy {
			b.WriteString(styleMuted().Render("Submitting request...") + "\n")
		}
		b.WriteString(styleMuted().Render("enter: request reset   esc: back"))

	case forgotStageWaiting:
		b.WriteString("Waiting for an admin to approve the reset request.\n\n")
		b.WriteString("Status: " + string(f.status) + "\n\n")
		b.WriteString(styleMuted().Render("Checks every 5 seconds for up to 2 minutes.   esc: cancel"))

	case forgotStageNewPassword:
		b.WriteString(styleSuccess().Render("Request approved.") + "\n\n")
		b.WriteString("New password\n" + f.password.View() + "\n\n")
		b.WriteString("Confirm password\n" + f.confirm.View() + "\n\n")
		if f.localErr != "" {
			b.WriteString(styleError().Render(f.localErr) + "\n")
		}
		if m.busy {
			b.WriteString(styleMuted().Render("Saving...") + "\n")
		}
		b.WriteString(styleMuted().Render("enter: save   tab: next field   esc: cancel"))

	case forgotStageDone:
		b.WriteString("The reset request was " + string(f.status) + ".\n\n")
		b.WriteString(styleMuted().Render("enter: back"))
	}
	return b.String()
}
