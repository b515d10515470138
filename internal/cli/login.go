package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/session"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login <student|organization|admin>",
		Short: "Log in and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := model.Role(strings.ToLower(strings.TrimSpace(args[0])))
			if !role.Valid() {
				return fmt.Errorf("unknown role %q (student, organization or admin)", args[0])
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			ctx := cmd.Context()
			c := app.client()
			sess := session.Session{Role: role}
			switch role {
			case model.RoleStudent:
				st, err := c.LoginStudent(ctx, email, password)
				if err != nil {
					return writeErr(cmd, err)
				}
				sess.Student = &st
			case model.RoleOrganization:
				org, err := c.LoginOrganization(ctx, email, password)
				if err != nil {
					return writeErr(cmd, err)
				}
				sess.Organization = &org
			case model.RoleAdmin:
				ad, err := c.LoginAdmin(ctx, email, password)
				if err != nil {
					return writeErr(cmd, err)
				}
				sess.Admin = &ad
			}

			if err := app.sessions().Save(ctx, sess); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedIn": true, "role": role})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", envOr("SIA_PASSWORD", ""), "Account password (or SIA_PASSWORD)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sessions().Clear(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedIn": false})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.sessions().Load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sess)
		},
	}
}
