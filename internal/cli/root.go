package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/api"
	"github.com/hy461283-sudo/intership-allotment/internal/format"
	"github.com/hy461283-sudo/intership-allotment/internal/session"
	"github.com/hy461283-sudo/intership-allotment/internal/tui"
)

type App struct {
	BaseURL    string
	ConfigDir  string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	// Local .env overrides for development; absence is fine.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:          "sia",
		Short:        "SIA internship allotment client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  sia

  # Scriptable commands
  sia login organization --email org@example.com
  sia projects list
  sia projects create --input listing.json --draft
  sia password forgot someone@example.com --wait
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("SIA_API_BASE_URL", api.DefaultBaseURL), "Backend base URL")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("SIA_CONFIG_DIR", ""), "Path to config dir (default: ~/.sia)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SIA_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newPasswordCmd(app))
	cmd.AddCommand(newProfileCmd(app))

	return cmd
}

func runTUI(app *App) error {
	return tui.Run(app.client(), app.sessions())
}

func (app *App) client() *api.Client {
	return api.New(app.BaseURL)
}

func (app *App) sessions() *session.SQLiteStore {
	dir := app.ConfigDir
	if dir == "" {
		dir = session.DefaultDir()
	}
	return session.NewSQLiteStore(dir)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
