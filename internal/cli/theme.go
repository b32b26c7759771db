package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acetasks/ace/internal/usecase"
)

// newThemeCommand creates the theme command.
// Without a subcommand it prints the current theme.
func newThemeCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the UI theme",
		Long: `Show or change the UI theme used by the interactive list.

The theme is either "dark" (default) or "light" and is saved with the tasks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTheme(cmd, e)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTheme(cmd, e)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setTheme(cmd, e, usecase.SetThemeInput{Toggle: true})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Set the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTheme(cmd, e, usecase.SetThemeInput{Theme: args[0]})
		},
	})

	return cmd
}

func printTheme(cmd *cobra.Command, e *env) error {
	c, err := e.container()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Themes.Theme().Display())
	return nil
}

func setTheme(cmd *cobra.Command, e *env, in usecase.SetThemeInput) error {
	c, err := e.container()
	if err != nil {
		return err
	}

	out, err := c.SetThemeUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", out.Theme.Display())
	return nil
}
