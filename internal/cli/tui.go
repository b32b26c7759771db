package cli

import "github.com/spf13/cobra"

// newTUICommand creates the tui command for launching the interactive TUI.
// Running ace without a command does the same.
func newTUICommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
}
