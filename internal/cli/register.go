package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
	"github.com/hy461283-sudo/intership-allotment/internal/wizard"
)

func newRegisterCmd(app *App) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "register <student|organization|admin>",
		Short: "Register an account from a JSON form file",
		Long: strings.TrimSpace(`
Register an account non-interactively. The input file is a flat JSON object
of field name to value; file-upload fields (photo, govProof, resume,
profileDoc, ...) take a local path. The form passes through the same step-by-step
validation as the interactive wizard and reports every rejected field.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := strings.ToLower(strings.TrimSpace(args[0]))
			steps := wizard.StepsFor(role)
			if steps == nil {
				return fmt.Errorf("unknown role %q (student, organization or admin)", args[0])
			}
			if inputPath == "" {
				return fmt.Errorf("--input is required")
			}

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			var in map[string]string
			if err := json.Unmarshal(raw, &in); err != nil {
				return writeErr(cmd, fmt.Errorf("parse %s: %w", inputPath, err))
			}

			w := wizard.New(steps)
			for _, step := range steps {
				for _, fd := range step.Fields {
					v, ok := in[fd.Name]
					if !ok {
						continue
					}
					if fd.Kind == wizard.FieldFile {
						w.Set(fd.Name, wizard.File(v))
					} else {
						w.Set(fd.Name, wizard.Text(v))
					}
				}
			}

			// Walk the same gates the interactive wizard enforces so headless
			// submissions cannot skip a step's validation.
			for !w.OnLastStep() {
				if !w.Next() {
					return rejectForm(cmd, app, w)
				}
			}
			fields, ok := w.Submit()
			if !ok {
				return rejectForm(cmd, app, w)
			}

			values, files := fields.Split()
			if err := app.client().Register(cmd.Context(), model.Role(role), values, files); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"registered": true, "role": role})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the JSON form file")
	return cmd
}

func rejectForm(cmd *cobra.Command, app *App, w *wizard.Wizard) error {
	errs := w.Errors()
	_ = writeOut(cmd, app, map[string]any{"registered": false, "step": w.Step(), "errors": errs})
	return formInvalidError{errs: errs}
}
