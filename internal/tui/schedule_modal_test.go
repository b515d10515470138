package tui

import (
	"testing"
	"time"
)

func TestSchedState_DefaultsToTomorrowMorning(t *testing.T) {
	now := time.Date(2026, time.August, 30, 17, 45, 0, 0, time.Local)
	s := newSchedState(now)

	got := s.Timestamp(now)
	want := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("default timestamp = %v, want %v", got, want)
	}
}

func TestSchedState_BumpMonthCarriesIntoNextYear(t *testing.T) {
	now := time.Date(2026, time.December, 10, 12, 0, 0, 0, time.Local)
	s := newSchedState(now)
	s.setDate(2026, 12, 15)
	s.focus = dateFocusMonth

	s.bump(1, now)

	got := s.Timestamp(now)
	if got.Year() != 2027 || got.Month() != time.January || got.Day() != 15 {
		t.Fatalf("bumped date = %v, want 2027-01-15", got)
	}
}

func TestSchedState_BumpMonthClampsShortMonth(t *testing.T) {
	now := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.Local)
	s := newSchedState(now)
	s.setDate(2026, 1, 31)
	s.focus = dateFocusMonth

	s.bump(1, now)

	got := s.Timestamp(now)
	if got.Month() != time.February || got.Day() != 28 {
		t.Fatalf("bumped date = %v, want clamped to 2026-02-28", got)
	}
}

func TestSchedState_TimestampClampsOutOfRangeTime(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)
	s := newSchedState(now)
	s.hour.SetValue("99")
	s.minute.SetValue("77")

	got := s.Timestamp(now)
	if got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("clamped time = %02d:%02d, want 23:59", got.Hour(), got.Minute())
	}
}

func TestSchedState_GarbageInputFallsBackToNow(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local)
	s := newSchedState(now)
	s.year.SetValue("")
	s.month.SetValue("xx")
	s.day.SetValue("")

	y, mo, d := s.currentDateParts(now)
	if y != 2026 || mo != 6 || d != 15 {
		t.Fatalf("parts = %d-%d-%d, want 2026-6-15", y, mo, d)
	}
}
