// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Raw text; surrounding whitespace is trimmed
}

// AddTaskOutput contains the result of adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskOutput struct {
	Task  domain.Task // The created task (zero if nothing was added)
	Added bool        // False when the text was whitespace-only
}

// AddTask is the use case for appending a task.
type AddTask struct {
	tasks domain.TaskStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskStore) *AddTask {
	return &AddTask{
		tasks: tasks,
	}
}

// Execute appends a task. Whitespace-only text is not an error; it reports Added=false.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, ok := uc.tasks.Add(in.Text)
	if !ok {
		return &AddTaskOutput{}, nil
	}

	if err := uc.tasks.LastPersistError(); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &AddTaskOutput{Task: task, Added: true}, nil
}
