package usecase

import (
	"context"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

// EditTaskInput contains the parameters for renaming a task.
type EditTaskInput struct {
	Text   string // New text; surrounding whitespace is trimmed
	TaskID int64  // Task ID to edit
}

// EditTaskOutput contains the result of renaming a task.
// Fields are ordered to minimize memory padding.
type EditTaskOutput struct {
	Task    domain.Task // The task after the edit
	OldText string      // Text before the edit
}

// EditTask is the use case for renaming a task non-interactively.
// It drives the same edit session the TUI uses.
type EditTask struct {
	tasks domain.TaskStore
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskStore) *EditTask {
	return &EditTask{
		tasks: tasks,
	}
}

// Execute replaces the text of the task with the given ID.
// Returns domain.ErrTaskNotFound or domain.ErrEmptyText when nothing changed.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	before, ok := uc.tasks.Get(in.TaskID)
	if !ok || !uc.tasks.BeginEdit(in.TaskID) {
		return nil, domain.ErrTaskNotFound
	}

	uc.tasks.SetWorkingCopy(in.Text)
	if !uc.tasks.CommitEdit() {
		uc.tasks.CancelEdit()
		return nil, domain.ErrEmptyText
	}

	if err := uc.tasks.LastPersistError(); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	after, _ := uc.tasks.Get(in.TaskID)
	return &EditTaskOutput{Task: after, OldText: before.Text}, nil
}
