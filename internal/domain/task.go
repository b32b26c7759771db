// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Task represents one user-visible to-do item.
// Field order matches the persisted record layout.
type Task struct {
	ID        int64  `json:"id"`        // Unique within the collection, immutable
	Text      string `json:"text"`      // Trimmed, never empty
	Completed bool   `json:"completed"` // Defaults to false
}

// NormalizeText trims surrounding whitespace from raw user input.
// The second return value is false when nothing is left.
func NormalizeText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, text != ""
}

// Transition describes the direction of a completion toggle.
type Transition int

const (
	TransitionNone      Transition = iota // No task matched
	TransitionCompleted                   // incomplete -> complete
	TransitionReopened                    // complete -> incomplete
)

// String returns the string representation of the transition.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionCompleted:
		return "completed"
	case TransitionReopened:
		return "reopened"
	}
	return "unknown"
}

// Celebrates reports whether the transition should trigger the completion cue.
// Only incomplete -> complete does.
func (t Transition) Celebrates() bool {
	return t == TransitionCompleted
}

// CloneTasks returns a copy of tasks that shares no backing array with the input.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest id in tasks, or 0 for an empty slice.
func MaxID(tasks []Task) int64 {
	var highest int64
	for _, t := range tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}
