// Package tui is the interactive terminal front end: role selection, login,
// the registration wizards and the organization dashboard.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy461283-sudo/intership-allotment/internal/api"
	"github.com/hy461283-sudo/intership-allotment/internal/dashboard"
	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/session"
	"github.com/hy461283-sudo/intership-allotment/internal/wizard"
)

// registeredBannerDelay keeps the post-registration success banner on screen
// before redirecting to login, matching the original flow's pause.
const registeredBannerDelay = 2 * time.Second

type view int

const (
	viewRoleSelect view = iota
	viewLogin
	viewRegister
	viewForgot
	viewDashboard
	viewProfile
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalSchedule
)

func Run(client *api.Client, sessions *session.SQLiteStore) error {
	applyColorProfilePreference()
	m := newAppModel(client, sessions)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type appModel struct {
	client   *api.Client
	sessions *session.SQLiteStore

	width  int
	height int
	view   view

	errMsg    string
	statusMsg string
	busy      bool

	// Role selection / login.
	roleIdx   int
	loginRole model.Role
	login     loginState

	// Registration wizard.
	wiz *wizardState

	// Password reset flow.
	forgot forgotState

	// Organization dashboard.
	dash dashState

	// Student profile editor.
	profile profileState
}

var roleOrder = []model.Role{model.RoleStudent, model.RoleOrganization, model.RoleAdmin}

func newAppModel(client *api.Client, sessions *session.SQLiteStore) appModel {
	m := appModel{
		client:   client,
		sessions: sessions,
		view:     viewRoleSelect,
	}
	m.login = newLoginState()
	m.forgot = newForgotState()

	// A saved session goes straight to its role's landing view.
	if sess, err := sessions.Load(context.Background()); err == nil {
		switch {
		case sess.Role == model.RoleOrganization && sess.Organization != nil:
			m.enterDashboard(*sess.Organization)
		case sess.Role == model.RoleStudent && sess.Student != nil:
			m.profile = profileState{student: *sess.Student}
			m.view = viewProfile
		}
	}
	return m
}

func (m *appModel) enterDashboard(org model.Organization) {
	ctl := dashboard.NewController(m.client, org.OrgID)
	m.dash = newDashState(ctl, org)
	m.view = viewDashboard
}

func (m appModel) Init() tea.Cmd {
	switch m.view {
	case viewDashboard:
		return m.refreshProjectsCmd()
	case viewProfile:
		return m.loadProfileCmd(m.profile.student.StudentID)
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dash.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		if msg.sess.Role == model.RoleOrganization && msg.sess.Organization != nil {
			m.enterDashboard(*msg.sess.Organization)
			return m, m.refreshProjectsCmd()
		}
		if msg.sess.Role == model.RoleStudent && msg.sess.Student != nil {
			m.profile = profileState{student: *msg.sess.Student}
			m.busy = true
			return m, m.loadProfileCmd(msg.sess.Student.StudentID)
		}
		m.statusMsg = "Logged in as " + string(msg.sess.Role) + "."
		return m, nil

	case registerDoneMsg:
		m.busy = false
		if msg.err != nil {
			if m.wiz != nil {
				m.wiz.w.SetSubmitError(msg.err.Error())
			}
			return m, nil
		}
		if m.wiz != nil {
			m.wiz.done = true
		}
		return m, tea.Tick(registeredBannerDelay, func(time.Time) tea.Msg {
			return registeredRedirectMsg{}
		})

	case registeredRedirectMsg:
		m.wiz = nil
		m.view = viewLogin
		m.statusMsg = "Registration submitted. Log in once your account is approved."
		return m, nil

	case projectsRefreshedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.dash.reloadLists()
		return m, nil

	case mutationDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
			m.statusMsg = msg.action
			m.dash.afterMutation()
		}
		m.dash.reloadLists()
		return m, nil

	case profileLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.profile = newProfileState(m.profile.student, msg.profile)
		m.view = viewProfile
		return m, nil

	case profileSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.statusMsg = "Profile updated."
		return m, m.loadProfileCmd(m.profile.student.StudentID)

	case forgotDoneMsg, resetPollMsg, resetTickMsg, resetDoneMsg:
		return m.updateForgot(msg)
	}

	switch m.view {
	case viewRoleSelect:
		return m.updateRoleSelect(msg)
	case viewLogin:
		return m.updateLogin(msg)
	case viewRegister:
		return m.updateWizard(msg)
	case viewForgot:
		return m.updateForgot(msg)
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewRoleSelect:
		body = m.viewRoleSelect()
	case viewLogin:
		body = m.viewLogin()
	case viewRegister:
		body = m.viewWizard()
	case viewForgot:
		body = m.viewForgot()
	case viewDashboard:
		body = m.viewDashboard()
	case viewProfile:
		body = m.viewProfile()
	}

	var footer []string
	if m.errMsg != "" {
		footer = append(footer, styleError().Render(m.errMsg))
	}
	if m.statusMsg != "" {
		footer = append(footer, styleSuccess().Render(m.statusMsg))
	}
	if len(footer) == 0 {
		return body
	}
	return body + "\n" + strings.Join(footer, "\n")
}

func (m appModel) header(title string) string {
	st := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	return st.Render("SIA") + "  " + styleMuted().Render(title) + "\n"
}

// refreshProjectsCmd re-fetches the organization's projects through the
// controller. The busy flag keeps mutations from overlapping a refresh in
// the UI; the backend tolerates overlap either way.
func (m appModel) refreshProjectsCmd() tea.Cmd {
	ctl := m.dash.ctl
	return func() tea.Msg {
		return projectsRefreshedMsg{err: ctl.Refresh(context.Background())}
	}
}

func (m appModel) loginCmd(role model.Role, email, password string) tea.Cmd {
	client := m.client
	sessions := m.sessions
	return func() tea.Msg {
		ctx := context.Background()
		sess := session.Session{Role: role}
		switch role {
		case model.RoleStudent:
			st, err := client.LoginStudent(ctx, email, password)
			if err != nil {
				return loginDoneMsg{err: err}
			}
			sess.Student = &st
		case model.RoleOrganization:
			org, err := client.LoginOrganization(ctx, email, password)
			if err != nil {
				return loginDoneMsg{err: err}
			}
			sess.Organization = &org
		case model.RoleAdmin:
			ad, err := client.LoginAdmin(ctx, email, password)
			if err != nil {
				return loginDoneMsg{err: err}
			}
			sess.Admin = &ad
		}
		if err := sessions.Save(ctx, sess); err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{sess: sess}
	}
}

func (m appModel) registerCmd(role model.Role, fields wizard.Fields) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		values, files := fields.Split()
		return registerDoneMsg{err: client.Register(context.Background(), role, values, files)}
	}
}

func (m appModel) logoutCmd() tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		_ = sessions.Clear(context.Background())
		return nil
	}
}

func (m appModel) checkResetCmd(email string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		st, tok, err := client.ResetStatus(context.Background(), email)
		return resetPollMsg{status: st, token: tok, err: err}
	}
}
