package usecase

import (
	"context"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int64 // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
// Fields are ordered to minimize memory padding.
type ToggleTaskOutput struct {
	Task       domain.Task       // The task after the toggle
	Transition domain.Transition // Direction of the toggle
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks domain.TaskStore
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskStore) *ToggleTask {
	return &ToggleTask{
		tasks: tasks,
	}
}

// Execute toggles the task with the given ID.
// Returns domain.ErrTaskNotFound if no task matches.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	transition := uc.tasks.Toggle(in.TaskID)
	if transition == domain.TransitionNone {
		return nil, domain.ErrTaskNotFound
	}

	if err := uc.tasks.LastPersistError(); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	task, _ := uc.tasks.Get(in.TaskID)
	return &ToggleTaskOutput{Task: task, Transition: transition}, nil
}
