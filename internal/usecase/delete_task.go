package usecase

import (
	"context"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int64 // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks domain.TaskStore
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskStore) *DeleteTask {
	return &DeleteTask{
		tasks: tasks,
	}
}

// Execute deletes the task with the given ID.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	// Verify task exists
	task, ok := uc.tasks.Get(in.TaskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	uc.tasks.Delete(in.TaskID)

	if err := uc.tasks.LastPersistError(); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return &DeleteTaskOutput{Task: task}, nil
}
