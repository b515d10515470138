package session

import (
	"context"
	"errors"
	"testing"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

func TestLoad_NotLoggedIn(t *testing.T) {
	t.Parallel()

	s := NewSQLiteStore(t.TempDir())
	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
}

func TestSaveLoadClear_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSQLiteStore(t.TempDir())

	sess := Session{
		Role:         model.RoleOrganization,
		Organization: &model.Organization{OrgID: 42, Name: "Acme Labs", Email: "org@x.co"},
	}
	if err := s.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Role != model.RoleOrganization || got.Organization == nil || got.Organization.OrgID != 42 {
		t.Errorf("loaded session = %+v", got)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("after Clear err = %v, want ErrNotLoggedIn", err)
	}
}

func TestSave_RejectsRolelessSession(t *testing.T) {
	t.Parallel()

	s := NewSQLiteStore(t.TempDir())
	if err := s.Save(context.Background(), Session{}); err == nil {
		t.Fatal("want error for session without role")
	}
}

func TestDeviceID_StableAcrossOpens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewSQLiteStore(dir).DeviceID(ctx)
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	if first == "" {
		t.Fatal("empty device id")
	}
	second, err := NewSQLiteStore(dir).DeviceID(ctx)
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	if second != first {
		t.Errorf("device id changed: %q then %q", first, second)
	}
}
