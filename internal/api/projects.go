package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

// CreateProject submits a new job listing for the organization. scheduledAt
// is only sent when non-nil and travels with the "scheduled" status; plain
// creates use "draft" or "active".
func (c *Client) CreateProject(ctx context.Context, orgID int64, form model.ProjectForm, status model.ProjectStatus, scheduledAt *time.Time) error {
	values := form.FormValues()
	values["organizationId"] = fmt.Sprintf("%d", orgID)
	values["status"] = string(status)
	if scheduledAt != nil {
		values["scheduled_time"] = scheduledAt.UTC().Format(time.RFC3339)
	}

	files := map[string]string{}
	if form.GuidelinesPath != "" {
		files["guidelines"] = form.GuidelinesPath
	}
	return c.doMultipart(ctx, "/api/organization/projects", values, files, nil)
}

// ListProjects fetches every listing belonging to the organization,
// regardless of status. The backend responds with a bare JSON array.
func (c *Client) ListProjects(ctx context.Context, orgID int64) ([]model.Project, error) {
	var out []model.Project
	path := fmt.Sprintf("/api/organization/projects/%d", orgID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProject replaces a listing's editable fields. The backend treats an
// update as a publish: the listing comes back active whatever it was before.
func (c *Client) UpdateProject(ctx context.Context, projectID int64, form model.ProjectForm) error {
	body := map[string]any{"status": string(model.StatusActive)}
	for k, v := range form.FormValues() {
		body[k] = v
	}
	path := fmt.Sprintf("/api/organization/projects/%d", projectID)
	return c.doJSON(ctx, http.MethodPut, path, body, nil)
}

// ScheduleProject moves a draft to scheduled with a go-live time.
func (c *Client) ScheduleProject(ctx context.Context, projectID int64, at time.Time) error {
	body := map[string]any{
		"status":         string(model.StatusScheduled),
		"scheduled_time": at.UTC().Format(time.RFC3339),
	}
	path := fmt.Sprintf("/api/organization/projects/%d", projectID)
	return c.doJSON(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) DeleteProject(ctx context.Context, projectID int64) error {
	path := fmt.Sprintf("/api/organization/projects/%d", projectID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
