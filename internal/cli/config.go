package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/infra/config"
	"github.com/acetasks/ace/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the ace configuration file and show the settings in effect.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(e))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(e))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging the config file and flags
over the defaults, along with the resolved store and log locations and
the keys currently held by the store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded file section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if out.File.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Paths]")
			_, _ = fmt.Fprintf(w, "- store: %s\n", out.StorePath)
			_, _ = fmt.Fprintf(w, "- log: %s\n", out.LogPath)
			_, _ = fmt.Fprintln(w)

			if out.Keys != nil {
				_, _ = fmt.Fprintln(w, "[Stored Keys]")
				if len(out.Keys) == 0 {
					_, _ = fmt.Fprintln(w, "- (none)")
				}
				for _, k := range out.Keys {
					_, _ = fmt.Fprintf(w, "- %s\n", k)
				}
				_, _ = fmt.Fprintln(w)
			}

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	output := map[string]any{
		"store": cfg.Store,
		"log":   cfg.Log,
		"ui": map[string]any{
			"confetti":             cfg.UI.Confetti,
			"celebration_duration": cfg.UI.CelebrationDuration.String(),
		},
	}

	// Encode to TOML
	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a commented configuration file with default values to stdout.

It does not read existing configuration files and works even if they are broken.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file",
		Long: `Create a commented config file with default values.

The file is written to --config, or $XDG_CONFIG_HOME/ace/config.toml.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := initConfigUseCase(e).Execute(cmd.Context(), usecase.InitConfigInput{
				Force: force,
			})
			if errors.Is(err, domain.ErrConfigExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

// initConfigUseCase works without opening the store so a broken config
// file can be replaced.
func initConfigUseCase(e *env) *usecase.InitConfig {
	if e.c != nil {
		return e.c.InitConfigUseCase()
	}
	path := e.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	return usecase.NewInitConfig(config.NewManager(path))
}
