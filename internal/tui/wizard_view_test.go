package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

func newWizardModel(t *testing.T, role model.Role) appModel {
	t.Helper()
	m := appModel{view: viewRoleSelect, loginRole: role}
	m.startWizard()
	if m.view != viewRegister || m.wiz == nil {
		t.Fatalf("startWizard should enter the registration view")
	}
	return m
}

func TestWizard_EnterOnIncompleteStepStaysPut(t *testing.T) {
	m := newWizardModel(t, model.RoleStudent)

	// Enter on the last field of the step attempts to advance.
	m.wiz.focus = len(m.wiz.defs) - 1
	m.wiz.refocus()
	mAny, _ := m.updateWizard(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mAny.(appModel)

	if got := m2.wiz.w.Step(); got != 1 {
		t.Fatalf("step = %d, want 1", got)
	}
	if len(m2.wiz.w.Errors()) == 0 {
		t.Fatalf("expected validation errors on the incomplete step")
	}
}

func TestWizard_EscOnFirstStepReturnsToRoleSelect(t *testing.T) {
	m := newWizardModel(t, model.RoleOrganization)

	mAny, _ := m.updateWizard(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := mAny.(appModel)

	if m2.view != viewRoleSelect {
		t.Fatalf("esc on the first step should leave the wizard")
	}
	if m2.wiz != nil {
		t.Fatalf("wizard state should be discarded on exit")
	}
}

func TestWizard_TypedValueSurvivesFocusMove(t *testing.T) {
	m := newWizardModel(t, model.RoleOrganization)

	name := m.wiz.defs[0].Name
	m.wiz.inputs[0].SetValue("Acme Labs")
	mAny, _ := m.updateWizard(tea.KeyMsg{Type: tea.KeyTab})
	m2 := mAny.(appModel)

	if got := m2.wiz.w.Get(name).Text(); got != "Acme Labs" {
		t.Fatalf("field %q = %q after tab, want the typed value", name, got)
	}
}

func TestRoleSelect_R_OpensMatchingWizard(t *testing.T) {
	m := appModel{view: viewRoleSelect, roleIdx: 1} // organization

	mAny, _ := m.updateRoleSelect(keyRune('r'))
	m2 := mAny.(appModel)

	if m2.view != viewRegister {
		t.Fatalf("r should open the registration wizard")
	}
	if m2.wiz == nil || m2.wiz.role != model.RoleOrganization {
		t.Fatalf("wizard should target the highlighted role")
	}
}

func TestRegisterDone_ErrorLandsOnSubmitLine(t *testing.T) {
	m := newWizardModel(t, model.RoleAdmin)
	m.busy = true

	mAny, _ := m.Update(registerDoneMsg{err: errFake("email already registered")})
	m2 := mAny.(appModel)

	if m2.busy {
		t.Fatalf("busy should clear when registration resolves")
	}
	if got := m2.wiz.w.Err("submit"); got != "email already registered" {
		t.Fatalf("submit error = %q", got)
	}
	if m2.wiz.done {
		t.Fatalf("a failed registration must not flip the done banner")
	}
}

func TestRegisteredRedirect_LandsOnLogin(t *testing.T) {
	m := newWizardModel(t, model.RoleStudent)
	m.wiz.done = true

	mAny, _ := m.Update(registeredRedirectMsg{})
	m2 := mAny.(appModel)

	if m2.view != viewLogin {
		t.Fatalf("redirect should land on the login view")
	}
	if m2.wiz != nil {
		t.Fatalf("wizard state should be cleared after redirect")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
