package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/dashboard"
	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage the organization's job listings",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsDraftsCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsStatsCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsScheduleCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

// orgController loads the saved organization session and returns a refreshed
// controller over it.
func orgController(ctx context.Context, app *App) (*dashboard.Controller, error) {
	sess, err := app.sessions().Load(ctx)
	if err != nil {
		return nil, errNotLoggedIn("organization")
	}
	if sess.Role != model.RoleOrganization || sess.Organization == nil {
		return nil, errNotLoggedIn("organization")
	}
	ctl := dashboard.NewController(app.client(), sess.Organization.OrgID)
	if err := ctl.Refresh(ctx); err != nil {
		return nil, err
	}
	return ctl, nil
}

func newProjectsListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every job listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"projects": ctl.Search(query)})
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "Filter by code or name (case-insensitive)")
	return cmd
}

func newProjectsDraftsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List draft and scheduled listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"projects": ctl.Drafts()})
		},
	}
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := ctl.Find(id)
			if !ok {
				return writeErr(cmd, fmt.Errorf("project not found: %d", id))
			}
			return writeOut(cmd, app, p)
		},
	}
}

func newProjectsStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Overview counts for the dashboard cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := ctl.Stats()
			return writeOut(cmd, app, map[string]any{
				"total":        st.Total,
				"active":       st.Active,
				"drafts":       st.Drafts,
				"applications": st.Applications,
			})
		},
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var inputPath string
	var draft bool
	var at string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing from a JSON form file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readProjectForm(inputPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}

			status := model.StatusActive
			var scheduledAt *time.Time
			if at != "" {
				ts, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC 3339 (e.g. 2026-09-04T10:30:00Z): %w", err)
				}
				status = model.StatusScheduled
				scheduledAt = &ts
			} else if draft {
				status = model.StatusDraft
			}

			if err := ctl.Create(cmd.Context(), form, status, scheduledAt); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"created": true, "status": status})
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the JSON form file")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save as draft instead of publishing")
	cmd.Flags().StringVar(&at, "at", "", "Schedule the publish time (RFC 3339; implies scheduled)")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a listing (the backend republishes it as active)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			form, err := readProjectForm(inputPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ctl.Update(cmd.Context(), id, form); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"updated": true, "status": model.StatusActive})
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the JSON form file")
	return cmd
}

func newProjectsScheduleCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "schedule <project-id>",
		Short: "Schedule a draft's publish time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			var ts time.Time
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC 3339 (e.g. 2026-09-04T10:30:00Z): %w", err)
				}
				ts = parsed
			}
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ctl.Schedule(cmd.Context(), id, ts); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"scheduled": true, "at": ts})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Publish time (RFC 3339)")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			ctl, err := orgController(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !yes {
				return fmt.Errorf("refusing to delete project %d without --yes", id)
			}
			ctl.Confirm = func(model.Project) bool { return true }
			if err := ctl.Delete(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": true})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}

func parseProjectID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}

func readProjectForm(path string) (model.ProjectForm, error) {
	var form model.ProjectForm
	if path == "" {
		return form, fmt.Errorf("--input is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return form, err
	}
	if err := json.Unmarshal(raw, &form); err != nil {
		return form, fmt.Errorf("parse %s: %w", path, err)
	}
	// The guidelines upload travels outside the JSON shape.
	var withFile struct {
		Guidelines string `json:"guidelines"`
	}
	if err := json.Unmarshal(raw, &withFile); err == nil {
		form.GuidelinesPath = withFile.Guidelines
	}
	return form, nil
}
