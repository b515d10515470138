// Package dashboard holds the organization-side listing controller. It keeps
// a cached copy of the organization's projects, gates mutations behind local
// validation, and treats the backend as the single source of truth: every
// completed mutation invalidates the cache with a full re-fetch.
package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/hy461283-sudo/intership-allotment/internal/api"
	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

// API is the slice of the backend client the controller drives.
type API interface {
	CreateProject(ctx context.Context, orgID int64, form model.ProjectForm, status model.ProjectStatus, scheduledAt *time.Time) error
	ListProjects(ctx context.Context, orgID int64) ([]model.Project, error)
	UpdateProject(ctx context.Context, projectID int64, form model.ProjectForm) error
	ScheduleProject(ctx context.Context, projectID int64, at time.Time) error
	DeleteProject(ctx context.Context, projectID int64) error
}

// Controller owns the dashboard's project cache for one organization.
// Not safe for concurrent use; the TUI drives it from a single goroutine.
type Controller struct {
	api   API
	orgID int64

	// Confirm gates deletion. A nil Confirm declines every delete.
	Confirm func(p model.Project) bool

	projects []model.Project
	loaded   bool
}

func NewController(a API, orgID int64) *Controller {
	return &Controller{api: a, orgID: orgID}
}

// Projects returns the cached listing collection. Empty until the first
// Refresh completes.
func (c *Controller) Projects() []model.Project { return c.projects }

// Drafts returns the cached listings still in the drafts tab.
func (c *Controller) Drafts() []model.Project { return model.Drafts(c.projects) }

// Search filters the cache by the dashboard search box semantics.
func (c *Controller) Search(query string) []model.Project {
	return model.FilterProjects(c.projects, query)
}

// Stats summarizes the cache for the overview cards.
func (c *Controller) Stats() model.Stats { return model.ProjectStats(c.projects) }

// Loaded reports whether at least one fetch has succeeded.
func (c *Controller) Loaded() bool { return c.loaded }

// Find returns the cached project with the given id.
func (c *Controller) Find(projectID int64) (model.Project, bool) {
	for _, p := range c.projects {
		if p.ID == projectID {
			return p, true
		}
	}
	return model.Project{}, false
}

// Refresh replaces the cache with the backend's current collection.
func (c *Controller) Refresh(ctx context.Context) error {
	ps, err := c.api.ListProjects(ctx, c.orgID)
	if err != nil {
		return err
	}
	c.projects = ps
	c.loaded = true
	return nil
}

// Create submits a new listing. An empty status defaults to active;
// a scheduled time travels with the scheduled status, which the backend
// promotes to active on publish day.
func (c *Controller) Create(ctx context.Context, form model.ProjectForm, status model.ProjectStatus, scheduledAt *time.Time) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if status == "" {
		status = model.StatusActive
	}
	err := c.api.CreateProject(ctx, c.orgID, form, status, scheduledAt)
	return c.settle(ctx, err)
}

// Update replaces a listing's fields. The backend publishes on edit, so the
// listing is active afterwards regardless of its previous status. Only the
// code and name are required here; the original edit dialog accepted a
// partial form as long as those two were filled.
func (c *Controller) Update(ctx context.Context, projectID int64, form model.ProjectForm) error {
	if err := validateUpdateForm(form); err != nil {
		return err
	}
	err := c.api.UpdateProject(ctx, projectID, form)
	return c.settle(ctx, err)
}

// Schedule moves a listing to scheduled with a go-live time. A zero time is
// rejected before any request goes out.
func (c *Controller) Schedule(ctx context.Context, projectID int64, at time.Time) error {
	if at.IsZero() {
		return gate(msgPickDateTime)
	}
	err := c.api.ScheduleProject(ctx, projectID, at)
	return c.settle(ctx, err)
}

// Delete removes a listing after the confirm gate approves. A declined
// confirmation sends nothing and returns nil.
func (c *Controller) Delete(ctx context.Context, projectID int64) error {
	p, ok := c.Find(projectID)
	if !ok {
		p = model.Project{ID: projectID}
	}
	if c.Confirm == nil || !c.Confirm(p) {
		return nil
	}
	err := c.api.DeleteProject(ctx, projectID)
	return c.settle(ctx, err)
}

// settle applies the re-fetch policy after a mutation attempt. The backend
// may have changed state whenever it produced a response, so both success and
// application errors invalidate the cache. A transport failure never reached
// the backend and leaves the cache alone.
func (c *Controller) settle(ctx context.Context, mutationErr error) error {
	if mutationErr == nil || api.IsApplicationError(mutationErr) {
		if refreshErr := c.Refresh(ctx); mutationErr == nil {
			return refreshErr
		}
	}
	return mutationErr
}

func validateForm(form model.ProjectForm) error {
	if blank(form.ProjectCode) || blank(form.ProjectName) || blank(form.CoordinatorName) {
		return gate(msgRequiredFields)
	}
	if form.CoordinatorPhone != "" && !tenDigits(form.CoordinatorPhone) {
		return gate(msgPhoneDigits)
	}
	return nil
}

func validateUpdateForm(form model.ProjectForm) error {
	if blank(form.ProjectCode) || blank(form.ProjectName) {
		return gate(msgRequiredFields)
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func tenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
