package model

import (
	"reflect"
	"testing"
	"time"
)

func TestDrafts_KeepsDraftAndScheduledOnly(t *testing.T) {
	t.Parallel()

	ps := []Project{
		{ID: 1, Status: StatusDraft},
		{ID: 2, Status: StatusActive},
		{ID: 3, Status: StatusScheduled},
		{ID: 4, Status: StatusActive},
	}
	got := Drafts(ps)
	if len(got) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected projects 1 and 3, got %d and %d", got[0].ID, got[1].ID)
	}
}

func TestDrafts_EmptyCollection(t *testing.T) {
	t.Parallel()

	if got := Drafts(nil); len(got) != 0 {
		t.Fatalf("expected no drafts, got %d", len(got))
	}
}

func TestFilterProjects_EmptyQueryReturnsCollectionUnchanged(t *testing.T) {
	t.Parallel()

	ps := []Project{{ID: 1, Code: "P-1", Name: "Compilers"}}
	got := FilterProjects(ps, "")
	if !reflect.DeepEqual(got, ps) {
		t.Fatalf("expected unchanged collection, got %+v", got)
	}
}

func TestFilterProjects_CaseInsensitiveOverCodeAndName(t *testing.T) {
	t.Parallel()

	ps := []Project{
		{ID: 1, Code: "SIA-01", Name: "Backend Intern"},
		{ID: 2, Code: "SIA-02", Name: "Data Pipeline"},
		{ID: 3, Code: "OPS-09", Name: "sia liaison"},
	}

	got := FilterProjects(ps, "sia")
	if len(got) != 3 {
		t.Fatalf("expected all 3 to match 'sia', got %d", len(got))
	}
	got = FilterProjects(ps, "PIPELINE")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only project 2 to match, got %+v", got)
	}
}

func TestFilterProjects_Idempotent(t *testing.T) {
	t.Parallel()

	ps := []Project{
		{ID: 1, Code: "SIA-01", Name: "Backend Intern"},
		{ID: 2, Code: "OPS-09", Name: "Payroll"},
	}
	once := FilterProjects(ps, "sia")
	twice := FilterProjects(once, "sia")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice diverged: %+v vs %+v", once, twice)
	}
}

func TestProjectStats(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ps := []Project{
		{Status: StatusActive, Applications: 4},
		{Status: StatusDraft},
		{Status: StatusScheduled, ScheduledTime: &now, Applications: 1},
		{Status: StatusActive, Applications: 2},
	}
	st := ProjectStats(ps)
	want := Stats{Total: 4, Active: 2, Drafts: 1, Applications: 7}
	if st != want {
		t.Fatalf("stats mismatch: got %+v want %+v", st, want)
	}
}

func TestFormValues_SkipsEmptyAndRenamesCGPA(t *testing.T) {
	t.Parallel()

	f := ProjectForm{ProjectCode: "SIA-01", ProjectName: "Backend Intern", CoordinatorName: "A. Rao", CGPA: "7.5"}
	vals := f.FormValues()
	if vals["cgpaRequirement"] != "7.5" {
		t.Fatalf("expected cgpaRequirement=7.5, got %q", vals["cgpaRequirement"])
	}
	if _, ok := vals["cgpa"]; ok {
		t.Fatalf("cgpa must not be sent under its form name")
	}
	if _, ok := vals["stipend"]; ok {
		t.Fatalf("empty fields must be skipped")
	}
}

func TestResetStatusTerminal(t *testing.T) {
	t.Parallel()

	if ResetPending.Terminal() {
		t.Fatalf("pending is not terminal")
	}
	if ResetStatus("").Terminal() {
		t.Fatalf("empty status is not terminal")
	}
	if !ResetApproved.Terminal() || !ResetDenied.Terminal() {
		t.Fatalf("approved/denied are terminal")
	}
}
