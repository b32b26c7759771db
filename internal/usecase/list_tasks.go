package usecase

import (
	"context"

	"github.com/acetasks/ace/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	HideCompleted bool // Skip completed tasks
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks     []domain.Task // Tasks in insertion order
	Total     int           // Size of the whole collection
	Completed int           // Number of completed tasks in the whole collection
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskStore) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the collection in insertion order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all := uc.tasks.Tasks()
	out := &ListTasksOutput{
		Tasks: make([]domain.Task, 0, len(all)),
		Total: len(all),
	}

	for _, t := range all {
		if t.Completed {
			out.Completed++
			if in.HideCompleted {
				continue
			}
		}
		out.Tasks = append(out.Tasks, t)
	}

	return out, nil
}
