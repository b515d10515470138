package tui

import (
	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/session"
)

type loginDoneMsg struct {
	sess session.Session
	err  error
}

type registerDoneMsg struct {
	err error
}

// registeredRedirectMsg fires after the post-registration success banner has
// been on screen long enough to read.
type registeredRedirectMsg struct{}

type projectsRefreshedMsg struct {
	err error
}

type mutationDoneMsg struct {
	action string
	err    error
}

type profileLoadedMsg struct {
	profile map[string]any
	err     error
}

type profileSavedMsg struct {
	err error
}

type forgotDoneMsg struct {
	err error
}

type resetPollMsg struct {
	status model.ResetStatus
	token  string
	err    error
}

// resetTickMsg schedules the next reset-status check.
type resetTickMsg struct{}

type resetDoneMsg struct {
	err error
}
