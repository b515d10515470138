package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dateFocus int

const (
	dateFocusYear dateFocus = iota
	dateFocusMonth
	dateFocusDay
	dateFocusHour
	dateFocusMinute
)

type schedState struct {
	year   textinput.Model
	month  textinput.Model
	day    textinput.Model
	hour   textinput.Model
	minute textinput.Model

	focus    dateFocus
	localErr string
}

func newSchedState(now time.Time) schedState {
	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = width
		ti.Width = width
		return ti
	}
	s := schedState{
		year:   mk("yyyy", 4),
		month:  mk("mm", 2),
		day:    mk("dd", 2),
		hour:   mk("hh", 2),
		minute: mk("mm", 2),
	}
	// Default to tomorrow at 09:00; scheduling is always forward-looking.
	t := now.AddDate(0, 0, 1)
	s.year.SetValue(fmtYear(t.Year()))
	s.month.SetValue(fmt2(int(t.Month())))
	s.day.SetValue(fmt2(t.Day()))
	s.hour.SetValue("09")
	s.minute.SetValue("00")
	s.year.Focus()
	return s
}

func fmtYear(y int) string { return fmt.Sprintf("%04d", y) }
func fmt2(n int) string    { return fmt.Sprintf("%02d", n) }

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if d > last {
		return last
	}
	return d
}

func (s *schedState) currentDateParts(now time.Time) (y int, mo int, d int) {
	y = parseIntDefault(s.year.Value(), now.Year())
	mo = parseIntDefault(s.month.Value(), int(now.Month()))
	d = parseIntDefault(s.day.Value(), now.Day())
	if mo < 1 {
		mo = 1
	}
	if mo > 12 {
		mo = 12
	}
	d = clampDay(y, time.Month(mo), d)
	return
}

func (s *schedState) currentTimeParts() (h int, mi int) {
	h = parseIntDefault(s.hour.Value(), 0)
	mi = parseIntDefault(s.minute.Value(), 0)
	if h < 0 {
		h = 0
	}
	if h > 23 {
		h = 23
	}
	if mi < 0 {
		mi = 0
	}
	if mi > 59 {
		mi = 59
	}
	return
}

// Timestamp assembles the selected local time.
func (s *schedState) Timestamp(now time.Time) time.Time {
	y, mo, d := s.currentDateParts(now)
	h, mi := s.currentTimeParts()
	return time.Date(y, time.Month(mo), d, h, mi, 0, 0, now.Location())
}

// bump adjusts the focused field by delta, carrying across unit boundaries
// the way a date picker would.
func (s *schedState) bump(delta int, now time.Time) {
	switch s.focus {
	case dateFocusYear:
		y, mo, d := s.currentDateParts(now)
		y += delta
		d = clampDay(y, time.Month(mo), d)
		s.setDate(y, mo, d)
	case dateFocusMonth:
		y, mo, d := s.currentDateParts(now)
		mo += delta
		for mo < 1 {
			mo += 12
			y--
		}
		for mo > 12 {
			mo -= 12
			y++
		}
		d = clampDay(y, time.Month(mo), d)
		s.setDate(y, mo, d)
	case dateFocusDay:
		y, mo, d := s.currentDateParts(now)
		next := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, delta)
		s.setDate(next.Year(), int(next.Month()), next.Day())
	case dateFocusHour:
		h, mi := s.currentTimeParts()
		h += delta
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
		s.hour.SetValue(fmt2(h))
		s.minute.SetValue(fmt2(mi))
	case dateFocusMinute:
		h, mi := s.currentTimeParts()
		mi += delta
		for mi < 0 {
			mi += 60
			h--
		}
		for mi >= 60 {
			mi -= 60
			h++
		}
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
		s.hour.SetValue(fmt2(h))
		s.minute.SetValue(fmt2(mi))
	}
}

func (s *schedState) setDate(y, mo, d int) {
	s.year.SetValue(fmtYear(y))
	s.month.SetValue(fmt2(mo))
	s.day.SetValue(fmt2(d))
}

func (s *schedState) inputFor(f dateFocus) *textinput.Model {
	switch f {
	case dateFocusYear:
		return &s.year
	case dateFocusMonth:
		return &s.month
	case dateFocusDay:
		return &s.day
	case dateFocusHour:
		return &s.hour
	}
	return &s.minute
}

func (s *schedState) moveFocus(delta int) {
	next := int(s.focus) + delta
	if next < int(dateFocusYear) {
		next = int(dateFocusMinute)
	}
	if next > int(dateFocusMinute) {
		next = int(dateFocusYear)
	}
	s.inputFor(s.focus).Blur()
	s.focus = dateFocus(next)
	s.inputFor(s.focus).Focus()
}

func (s *schedState) handleKey(msg tea.KeyMsg, now time.Time) tea.Cmd {
	switch msg.String() {
	case "tab", "right":
		s.moveFocus(1)
		return nil
	case "shift+tab", "left":
		s.moveFocus(-1)
		return nil
	case "up", "+":
		s.bump(1, now)
		return nil
	case "down", "-":
		s.bump(-1, now)
		return nil
	}
	in := s.inputFor(s.focus)
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (s *schedState) view(width int) string {
	row := strings.Join([]string{
		s.year.View(), "-", s.month.View(), "-", s.day.View(),
		" ", s.hour.View(), ":", s.minute.View(),
	}, " ")

	lines := []string{
		"Publish this listing at:",
		"",
		row,
	}
	if s.localErr != "" {
		lines = append(lines, "", styleError().Render(s.localErr))
	}
	lines = append(lines, "", styleMuted().Render("up/down: adjust   tab: next part   enter: schedule   esc: cancel"))
	return renderModalBox(width, "Schedule listing", strings.Join(lines, "\n"))
}
