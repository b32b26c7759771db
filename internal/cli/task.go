package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/tui"
	"github.com/acetasks/ace/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Long: `Add a task to the end of the list.

All arguments are joined with spaces. Surrounding whitespace is trimmed;
whitespace-only text adds nothing.

Examples:
  ace add Buy milk
  ace add "Call the plumber"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Text: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if !out.Added {
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", out.Task.ID)
			return nil
		},
	}
}

// newListCommand creates the ls command for listing tasks.
func newListCommand(e *env) *cobra.Command {
	var opts struct {
		JSON          bool
		HideCompleted bool
	}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `Display the task list in insertion order.

Each line shows the position, a check box, the text and the task ID:
  #1 [ ] Buy milk (id 3)

Use --json to print the stored snapshot instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.container()
			if err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				HideCompleted: opts.HideCompleted,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if opts.JSON {
				data, err := domain.EncodeSnapshot(out.Tasks)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(w, string(data))
				return nil
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks")
				return nil
			}

			for i, t := range out.Tasks {
				_, _ = fmt.Fprintf(w, "#%d %s %s (id %d)\n", i+1, tui.CheckBox(t.Completed), t.Text, t.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the snapshot as JSON")
	cmd.Flags().BoolVar(&opts.HideCompleted, "hide-completed", false, "Skip completed tasks")

	return cmd
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between done and not done",
		Long: `Flip the completion of a task.

Running done on a completed task reopens it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			c, err := e.container()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if errors.Is(err, domain.ErrTaskNotFound) {
				_, _ = fmt.Fprintf(w, "No task #%d\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			if out.Transition.Celebrates() {
				_, _ = fmt.Fprintf(w, "Completed task #%d 🎉\n", id)
			} else {
				_, _ = fmt.Fprintf(w, "Reopened task #%d\n", id)
			}
			return nil
		},
	}
}

// newEditCommand creates the edit command for renaming a task.
func newEditCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Change the text of a task",
		Long: `Replace the text of a task.

Empty or whitespace-only text is rejected and the task keeps its text.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			c, err := e.container()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: id,
				Text:   strings.Join(args[1:], " "),
			})
			switch {
			case errors.Is(err, domain.ErrTaskNotFound):
				_, _ = fmt.Fprintf(w, "No task #%d\n", id)
				return nil
			case errors.Is(err, domain.ErrEmptyText):
				_, _ = fmt.Fprintf(w, "Task #%d unchanged: text must not be empty\n", id)
				return nil
			case err != nil:
				return err
			}

			_, _ = fmt.Fprintf(w, "Updated task #%d: %s\n", id, out.Task.Text)
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			c, err := e.container()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if errors.Is(err, domain.ErrTaskNotFound) {
				_, _ = fmt.Fprintf(w, "No task #%d\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(w, "Deleted task #%d: %s\n", id, out.Task.Text)
			return nil
		},
	}
}

// parseTaskID parses a task ID string (e.g., "1" or "#1").
func parseTaskID(s string) (int64, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, s)
	}
	return id, nil
}
