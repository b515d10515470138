package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy461283-sudo/intership-allotment/internal/dashboard"
	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

type dashTab int

const (
	tabOverview dashTab = iota
	tabListings
	tabDrafts
	tabAddProject
)

var tabTitles = []string{"Overview", "Job Listings", "Drafts", "Add Listing"}

type dashState struct {
	ctl *dashboard.Controller
	org model.Organization

	width  int
	height int
	tab    dashTab

	listings list.Model
	drafts   list.Model

	search    textinput.Model
	searching bool

	detail *model.Project

	form formState

	modal        modalKind
	confirmFocus confirmModalFocus
	targetID     int64
	targetCode   string
	sched        schedState
}

func newDashState(ctl *dashboard.Controller, org model.Organization) dashState {
	search := textinput.New()
	search.Placeholder = "search by code or name"
	search.CharLimit = 80

	return dashState{
		ctl:      ctl,
		org:      org,
		listings: newListingList(nil),
		drafts:   newListingList(nil),
		search:   search,
		form:     newFormState(nil),
	}
}

func (d *dashState) resize(w, h int) {
	d.width, d.height = w, h
	listH := h - 8
	if listH < 4 {
		listH = 4
	}
	d.listings.SetSize(w-4, listH)
	d.drafts.SetSize(w-4, listH)
}

// reloadLists rebuilds both lists from the controller cache. The search
// query only narrows the listings tab; drafts always show the full set.
func (d *dashState) reloadLists() {
	query := strings.TrimSpace(d.search.Value())
	d.listings.SetItems(listingItems(d.ctl.Search(query)))
	d.drafts.SetItems(listingItems(d.ctl.Drafts()))
	if d.detail != nil {
		if p, ok := d.ctl.Find(d.detail.ID); ok {
			d.detail = &p
		} else {
			d.detail = nil
		}
	}
}

// afterMutation closes whatever UI initiated the completed mutation.
func (d *dashState) afterMutation() {
	d.modal = modalNone
	d.targetID = 0
	if d.tab == tabAddProject {
		d.form = newFormState(nil)
		d.tab = tabListings
	}
}

// Project form.

type formField struct {
	name  string
	label string
	file  bool
}

var projectFormFields = []formField{
	{"projectCode", "Project Code *", false},
	{"projectName", "Project Name *", false},
	{"projectLocation", "Location", false},
	{"interns", "Interns Required", false},
	{"coordinatorName", "Coordinator Name *", false},
	{"coordinatorEmail", "Coordinator Email", false},
	{"coordinatorAltEmail", "Alternate Email", false},
	{"coordinatorPhone", "Coordinator Phone", false},
	{"coordinatorDesignation", "Designation", false},
	{"cgpaRequirement", "CGPA Requirement", false},
	{"discipline", "Discipline", false},
	{"skills", "Skills", false},
	{"stipend", "Stipend", false},
	{"guidelines", "Guidelines file", true},
}

type formState struct {
	inputs []textinput.Model
	focus  int
	editID int64 // 0 = create
}

func newFormState(prefill *model.Project) formState {
	f := formState{inputs: make([]textinput.Model, len(projectFormFields))}
	var src model.ProjectForm
	if prefill != nil {
		src = model.FormFromProject(*prefill)
		f.editID = prefill.ID
	}
	values := []string{
		src.ProjectCode, src.ProjectName, src.ProjectLocation, src.Interns,
		src.CoordinatorName, src.CoordinatorEmail, src.CoordinatorAltEmail,
		src.CoordinatorPhone, src.CoordinatorDesignation, src.CGPA,
		src.Discipline, src.Skills, src.Stipend, "",
	}
	for i, fd := range projectFormFields {
		ti := textinput.New()
		ti.CharLimit = 200
		if fd.file {
			ti.Placeholder = "path to file (optional)"
		}
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f *formState) refocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *formState) toProjectForm() model.ProjectForm {
	v := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }
	return model.ProjectForm{
		ProjectCode:            v(0),
		ProjectName:            v(1),
		ProjectLocation:        v(2),
		Interns:                v(3),
		CoordinatorName:        v(4),
		CoordinatorEmail:       v(5),
		CoordinatorAltEmail:    v(6),
		CoordinatorPhone:       v(7),
		CoordinatorDesignation: v(8),
		CGPA:                   v(9),
		Discipline:             v(10),
		Skills:                 v(11),
		Stipend:                v(12),
		GuidelinesPath:         v(13),
	}
}

// Mutation commands.

func (m appModel) createProjectCmd(form model.ProjectForm, status model.ProjectStatus, at *time.Time) tea.Cmd {
	ctl := m.dash.ctl
	return func() tea.Msg {
		action := "Listing published."
		if status == model.StatusDraft {
			action = "Draft saved."
		}
		return mutationDoneMsg{action: action, err: ctl.Create(context.Background(), form, status, at)}
	}
}

func (m appModel) updateProjectCmd(id int64, form model.ProjectForm) tea.Cmd {
	ctl := m.dash.ctl
	return func() tea.Msg {
		return mutationDoneMsg{action: "Listing updated and published.", err: ctl.Update(context.Background(), id, form)}
	}
}

func (m appModel) scheduleProjectCmd(id int64, at time.Time) tea.Cmd {
	ctl := m.dash.ctl
	return func() tea.Msg {
		return mutationDoneMsg{action: "Listing scheduled.", err: ctl.Schedule(context.Background(), id, at)}
	}
}

func (m appModel) deleteProjectCmd(id int64) tea.Cmd {
	ctl := m.dash.ctl
	return func() tea.Msg {
		ctl.Confirm = func(model.Project) bool { return true }
		return mutationDoneMsg{action: "Listing deleted.", err: ctl.Delete(context.Background(), id)}
	}
}

// Update.

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &m.dash

	key, isKey := msg.(tea.KeyMsg)

	if d.modal == modalConfirmDelete && isKey {
		return m.updateConfirmDelete(key)
	}
	if d.modal == modalSchedule && isKey {
		return m.updateScheduleModal(key)
	}
	if d.searching && isKey {
		return m.updateSearch(key, msg)
	}
	if d.detail != nil && isKey {
		return m.updateDetail(key)
	}
	if d.tab == tabAddProject {
		return m.updateProjectForm(msg)
	}

	if isKey {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			d.tab = dashTab(int(key.String()[0] - '1'))
			return m, nil
		case "h", "left":
			if d.tab > tabOverview {
				d.tab--
			}
			return m, nil
		case "l", "right":
			if d.tab < tabAddProject {
				d.tab++
			}
			return m, nil
		case "r":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.refreshProjectsCmd()
		case "/":
			if d.tab == tabListings || d.tab == tabDrafts {
				d.searching = true
				d.search.Focus()
			}
			return m, nil
		case "a":
			d.tab = tabAddProject
			d.form = newFormState(nil)
			return m, nil
		case "ctrl+o":
			m.view = viewRoleSelect
			m.statusMsg = "Logged out."
			return m, m.logoutCmd()
		}
	}

	switch d.tab {
	case tabListings, tabDrafts:
		return m.updateListingTab(msg)
	}
	return m, nil
}

func (d *dashState) activeList() *list.Model {
	if d.tab == tabDrafts {
		return &d.drafts
	}
	return &d.listings
}

func (m appModel) updateListingTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &m.dash
	l := d.activeList()

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if id, ok := selectedProjectID(*l); ok {
				if p, found := d.ctl.Find(id); found {
					d.detail = &p
				}
			}
			return m, nil
		case "e":
			if id, ok := selectedProjectID(*l); ok {
				if p, found := d.ctl.Find(id); found {
					d.form = newFormState(&p)
					d.tab = tabAddProject
				}
			}
			return m, nil
		case "d":
			if id, ok := selectedProjectID(*l); ok {
				p, _ := d.ctl.Find(id)
				d.modal = modalConfirmDelete
				d.confirmFocus = confirmFocusCancel
				d.targetID = id
				d.targetCode = p.Code
			}
			return m, nil
		case "s":
			if id, ok := selectedProjectID(*l); ok {
				d.modal = modalSchedule
				d.targetID = id
				d.sched = newSchedState(time.Now())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m appModel) updateSearch(key tea.KeyMsg, msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &m.dash
	switch key.String() {
	case "esc":
		d.searching = false
		d.search.Blur()
		d.search.SetValue("")
		d.reloadLists()
		return m, nil
	case "enter":
		d.searching = false
		d.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.reloadLists()
	return m, cmd
}

func (m appModel) updateDetail(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.dash
	switch key.String() {
	case "esc", "q":
		d.detail = nil
	case "e":
		p := *d.detail
		d.detail = nil
		d.form = newFormState(&p)
		d.tab = tabAddProject
	case "d":
		d.modal = modalConfirmDelete
		d.confirmFocus = confirmFocusCancel
		d.targetID = d.detail.ID
		d.targetCode = d.detail.Code
	case "s":
		d.modal = modalSchedule
		d.targetID = d.detail.ID
		d.sched = newSchedState(time.Now())
	}
	return m, nil
}

func (m appModel) updateConfirmDelete(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.dash
	switch key.String() {
	case "esc":
		d.modal = modalNone
		d.targetID = 0
		return m, nil
	case "tab", "left", "right":
		if d.confirmFocus == confirmFocusConfirm {
			d.confirmFocus = confirmFocusCancel
		} else {
			d.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if d.confirmFocus != confirmFocusConfirm {
			d.modal = modalNone
			d.targetID = 0
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		id := d.targetID
		d.modal = modalNone
		return m, m.deleteProjectCmd(id)
	}
	return m, nil
}

func (m appModel) updateScheduleModal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.dash
	switch key.String() {
	case "esc":
		d.modal = modalNone
		d.targetID = 0
		return m, nil
	case "enter":
		at := d.sched.Timestamp(time.Now())
		if !at.After(time.Now()) {
			d.sched.localErr = "Scheduled time must be in the future."
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		id := d.targetID
		d.modal = modalNone
		return m, m.scheduleProjectCmd(id, at)
	}
	return m, d.sched.handleKey(key, time.Now())
}

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &m.dash
	f := &d.form

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			d.tab = tabListings
			d.form = newFormState(nil)
			return m, nil
		case "tab", "down":
			if f.focus < len(f.inputs)-1 {
				f.focus++
			}
			f.refocus()
			return m, nil
		case "shift+tab", "up":
			if f.focus > 0 {
				f.focus--
			}
			f.refocus()
			return m, nil
		case "ctrl+d":
			// Save as draft from anywhere in the form.
			if m.busy {
				return m, nil
			}
			if f.editID != 0 {
				m.errMsg = "Editing republishes the listing; drafts can only be created."
				return m, nil
			}
			m.busy = true
			return m, m.createProjectCmd(f.toProjectForm(), model.StatusDraft, nil)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				f.focus++
				f.refocus()
				return m, nil
			}
			if m.busy {
				return m, nil
			}
			m.busy = true
			if f.editID != 0 {
				return m, m.updateProjectCmd(f.editID, f.toProjectForm())
			}
			return m, m.createProjectCmd(f.toProjectForm(), model.StatusActive, nil)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// View.

func (m appModel) viewDashboard() string {
	d := m.dash

	if d.modal == modalConfirmDelete {
		body := fmt.Sprintf("Delete listing %s? Applications attached to it are removed with it.", d.targetCode)
		return renderConfirmModal(d.width, "Delete listing", body, "Delete", "Cancel", d.confirmFocus)
	}
	if d.modal == modalSchedule {
		return d.sched.view(d.width)
	}
	if d.detail != nil {
		return m.viewProjectDetail(*d.detail)
	}

	var b strings.Builder
	b.WriteString(m.header(d.org.Name + " Dashboard"))
	b.WriteString(m.viewTabs() + "\n\n")

	switch d.tab {
	case tabOverview:
		b.WriteString(m.viewOverview())
	case tabListings:
		b.WriteString(m.viewListingTab(d.listings, "No listings yet. Press a to add one."))
	case tabDrafts:
		b.WriteString(m.viewListingTab(d.drafts, "No drafts."))
	case tabAddProject:
		b.WriteString(m.viewProjectForm())
	}
	return b.String()
}

func (m appModel) viewTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Padding(0, 1)
	inactive := styleMuted().Padding(0, 1)

	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if dashTab(i) == m.dash.tab {
			parts = append(parts, active.Render(title))
		} else {
			parts = append(parts, inactive.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m appModel) viewOverview() string {
	st := m.dash.ctl.Stats()
	card := lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(2).
		Background(colorControlBg).
		Foreground(colorSurfaceFg)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(fmt.Sprintf("Total\n%d", st.Total)),
		card.Render(fmt.Sprintf("Active\n%d", st.Active)),
		card.Render(fmt.Sprintf("Drafts\n%d", st.Drafts)),
		card.Render(fmt.Sprintf("Applications\n%d", st.Applications)),
	)

	help := styleMuted().Render("1-4/h/l: tabs   r: refresh   a: add listing   ctrl+o: log out   q: quit")
	if !m.dash.ctl.Loaded() {
		return styleMuted().Render("Loading projects...") + "\n\n" + help
	}
	return cards + "\n\n" + help
}

func (m appModel) viewListingTab(l list.Model, empty string) string {
	var b strings.Builder
	if m.dash.searching || strings.TrimSpace(m.dash.search.Value()) != "" {
		b.WriteString("Search: " + m.dash.search.View() + "\n\n")
	}
	if len(l.Items()) == 0 {
		b.WriteString(styleMuted().Render(empty) + "\n")
	} else {
		b.WriteString(l.View() + "\n")
	}
	b.WriteString(styleMuted().Render("enter: details   e: edit   d: delete   s: schedule   /: search"))
	return b.String()
}

func (m appModel) viewProjectDetail(p model.Project) string {
	md := projectMarkdown(p)
	width := m.dash.width - 4
	if width < 20 {
		width = 60
	}
	out := renderMarkdown(md, width)
	if visibleLineCount(out) == 0 {
		out = md
	}
	return out + "\n\n" + styleMuted().Render("e: edit   d: delete   s: schedule   esc: back")
}

func projectMarkdown(p model.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", p.Code, p.Name)
	fmt.Fprintf(&b, "**Status:** %s\n\n", p.Status)
	if p.Status == model.StatusScheduled && p.ScheduledTime != nil {
		fmt.Fprintf(&b, "**Publishes:** %s\n\n", p.ScheduledTime.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "**Applications:** %d\n\n", p.Applications)

	rows := [][2]string{
		{"Location", p.Location},
		{"Interns required", p.InternsRequired},
		{"Coordinator", p.CoordinatorName},
		{"Coordinator email", p.CoordinatorEmail},
		{"Coordinator phone", p.CoordinatorPhone},
		{"CGPA requirement", p.CGPARequirement},
		{"Discipline", p.Discipline},
		{"Stipend", p.Stipend},
	}
	for _, r := range rows {
		if r[1] != "" {
			fmt.Fprintf(&b, "- %s: %s\n", r[0], r[1])
		}
	}
	if p.Skills != "" {
		fmt.Fprintf(&b, "\n## Skills\n\n%s\n", p.Skills)
	}
	return b.String()
}

func (m appModel) viewProjectForm() string {
	f := m.dash.form
	var b strings.Builder
	title := "New listing"
	if f.editID != 0 {
		title = fmt.Sprintf("Edit listing %d (saving republishes it)", f.editID)
	}
	b.WriteString(title + "\n\n")

	for i, fd := range projectFormFields {
		label := "  " + fd.label
		if i == f.focus {
			label = "> " + fd.label
		}
		b.WriteString(label + "\n  " + f.inputs[i].View() + "\n")
	}

	if m.busy {
		b.WriteString("\n" + styleMuted().Render("Saving..."))
	}
	help := "enter: publish   ctrl+d: save draft   tab: next field   esc: cancel"
	if f.editID != 0 {
		help = "enter: save and publish   tab: next field   esc: cancel"
	}
	b.WriteString("\n" + styleMuted().Render(help))
	return b.String()
}
