package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

type listingItem struct {
	project model.Project
}

func (i listingItem) FilterValue() string {
	return i.project.Code + " " + i.project.Name
}

func (i listingItem) Title() string {
	return i.project.Code + "  " + i.project.Name + "  " + statusBadge(i.project)
}

func (i listingItem) Description() string {
	desc := fmt.Sprintf("%d application(s)", i.project.Applications)
	if i.project.Status == model.StatusScheduled && i.project.ScheduledTime != nil {
		desc += "  publishes " + i.project.ScheduledTime.Local().Format("2006-01-02 15:04")
	}
	return desc
}

func statusBadge(p model.Project) string {
	var color lipgloss.TerminalColor
	switch p.Status {
	case model.StatusActive:
		color = colorStatusActive
	case model.StatusScheduled:
		color = colorStatusScheduled
	default:
		color = colorStatusDraft
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + string(p.Status) + "]")
}

func newListingList(items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	// We render our own tabs + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("listing", "listings")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	return l
}

func listingItems(projects []model.Project) []list.Item {
	items := make([]list.Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, listingItem{project: p})
	}
	return items
}

func selectedProjectID(l list.Model) (int64, bool) {
	it, ok := l.SelectedItem().(listingItem)
	if !ok {
		return 0, false
	}
	return it.project.ID, true
}
