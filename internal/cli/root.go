// Package cli provides the command-line interface for ace.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acetasks/ace/internal/app"
	"github.com/acetasks/ace/internal/tui"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// annotationNoStore marks commands that must run without opening the store,
// e.g. to repair a broken config file.
const annotationNoStore = "ace/no-store"

// Opener builds the container once global flags are parsed.
type Opener func(opts app.Options) (*app.Container, error)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// env carries the container and global flag values to subcommands.
// Fields are ordered to minimize memory padding.
type env struct {
	open  Opener
	c     *app.Container
	opts  app.Options
	owned bool // The container was opened here and must be closed here
}

// container opens the container on first use.
func (e *env) container() (*app.Container, error) {
	if e.c != nil {
		return e.c, nil
	}
	if e.open == nil {
		return nil, errors.New("no store configured")
	}
	c, err := e.open(e.opts)
	if err != nil {
		return nil, err
	}
	e.c = c
	e.owned = true
	return c, nil
}

func (e *env) close() error {
	if !e.owned || e.c == nil {
		return nil
	}
	err := e.c.Close()
	e.c = nil
	e.owned = false
	return err
}

// NewRootCommand creates the root command for ace.
// open builds the container after global flags are parsed; version is shown by --version.
func NewRootCommand(open Opener, version string) *cobra.Command {
	return newRootCommand(&env{open: open}, version)
}

func newRootCommand(e *env, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ace",
		Short: "A small task list for the terminal",
		Long: `ace keeps a short list of text tasks you can add, rename, complete and delete.

Run ace without a command to open the interactive list.
The list and theme are saved to a JSON file, a git repository or a SQLite
database, selected with [store] in config.toml or --store.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStore(cmd) {
				return nil
			}

			c, err := e.container()
			if err != nil {
				return err
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&e.opts.ConfigPath, "config", "", "Path to config.toml")
	root.PersistentFlags().StringVar(&e.opts.Backend, "store", "", "Store backend: json, git or sqlite")
	root.PersistentFlags().StringVar(&e.opts.StorePath, "store-path", "", "Path to the store file, repository or database")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(e)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(e)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(e)
	doneCmd.GroupID = groupTask

	editCmd := newEditCommand(e)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(e)
	rmCmd.GroupID = groupTask

	exportCmd := newExportCommand(e)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupTask

	// Setup commands
	themeCmd := newThemeCommand(e)
	themeCmd.GroupID = groupSetup

	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	// Add subcommands
	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		editCmd,
		rmCmd,
		exportCmd,
		tuiCmd,
		themeCmd,
		configCmd,
	)

	return root
}

// needsStore reports whether cmd works on the task list or theme.
func needsStore(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationNoStore] == "true" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, "completion":
			return false
		}
	}
	return true
}
