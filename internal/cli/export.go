package cli

import (
	"github.com/spf13/cobra"

	"github.com/acetasks/ace/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all tasks as JSON or YAML",
		Long: `Print the whole task list to stdout.

JSON output has the same shape as the stored snapshot, so it can be
copied into another store.

Examples:
  ace export > tasks.json
  ace export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}

			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{Format: format})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out.Data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatJSON, "Output format: json or yaml")

	return cmd
}
