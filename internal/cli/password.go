package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/poll"
	"github.com/hy461283-sudo/intership-allotment/internal/wizard"
)

func newPasswordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password reset flow",
	}
	cmd.AddCommand(newPasswordForgotCmd(app))
	cmd.AddCommand(newPasswordStatusCmd(app))
	cmd.AddCommand(newPasswordResetCmd(app))
	return cmd
}

func newPasswordForgotCmd(app *App) *cobra.Command {
	var wait bool
	var interval, maxWait time.Duration

	cmd := &cobra.Command{
		Use:   "forgot <email>",
		Short: "Request a password reset (approval happens on the admin side)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			c := app.client()
			ctx := cmd.Context()

			if err := c.ForgotPassword(ctx, email); err != nil {
				return writeErr(cmd, err)
			}
			if !wait {
				return writeOut(cmd, app, map[string]any{"requested": true, "email": email})
			}

			var status model.ResetStatus
			var token string
			p := poll.New(interval, maxWait)
			err := p.Run(ctx, func(ctx context.Context) (bool, error) {
				st, tok, err := c.ResetStatus(ctx, email)
				if err != nil {
					return false, err
				}
				status, token = st, tok
				return st.Terminal(), nil
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"requested": true, "email": email, "status": status}
			if status == model.ResetApproved {
				out["token"] = token
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the request is approved or denied")
	cmd.Flags().DurationVar(&interval, "interval", poll.DefaultInterval, "Poll interval")
	cmd.Flags().DurationVar(&maxWait, "max-wait", poll.DefaultMaxWait, "Give up after this long")
	return cmd
}

func newPasswordStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <email>",
		Short: "Check a pending reset request once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, token, err := app.client().ResetStatus(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			out := map[string]any{"status": status}
			if status == model.ResetApproved {
				out["token"] = token
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newPasswordResetCmd(app *App) *cobra.Command {
	var token, password string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password with an approved reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" || password == "" {
				return fmt.Errorf("--token and --password are required")
			}
			if !wizard.StrongPassword(password) {
				return fmt.Errorf("password must be 8+ chars with uppercase, lowercase, number and symbol (@$!%%*?&#^)")
			}
			if err := app.client().ResetPassword(cmd.Context(), token, password); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"reset": true})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Approved reset token")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	return cmd
}
