package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the student profile",
	}
	cmd.AddCommand(newProfileShowCmd(app))
	cmd.AddCommand(newProfileUpdateCmd(app))
	return cmd
}

func studentID(cmd *cobra.Command, app *App) (int64, error) {
	sess, err := app.sessions().Load(cmd.Context())
	if err != nil {
		return 0, errNotLoggedIn("student")
	}
	if sess.Role != model.RoleStudent || sess.Student == nil {
		return 0, errNotLoggedIn("student")
	}
	return sess.Student.StudentID, nil
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in student's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := studentID(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			profile, err := app.client().StudentProfile(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, profile)
		},
	}
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Example: strings.TrimSpace(`
  sia profile update --set contact=9876543210 --set semester=6
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 {
				return fmt.Errorf("nothing to update: pass --set field=value")
			}
			fields := map[string]string{}
			for _, s := range sets {
				k, v, ok := strings.Cut(s, "=")
				if !ok || strings.TrimSpace(k) == "" {
					return fmt.Errorf("bad --set %q, expected field=value", s)
				}
				fields[strings.TrimSpace(k)] = v
			}
			id, err := studentID(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := app.client().UpdateStudentProfile(cmd.Context(), id, fields); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"updated": true})
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field to update, as field=value (repeatable)")
	return cmd
}
