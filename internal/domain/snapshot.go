package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Storage keys shared by every backend.
const (
	TasksKey = "tasks"
	ThemeKey = "theme"
)

// EncodeSnapshot serializes the collection as a JSON array of
// {id, text, completed} records in insertion order.
func EncodeSnapshot(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted snapshot.
// Empty input and JSON null decode to an empty collection.
// Anything that does not describe a valid collection returns ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) ([]Task, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Task{}, nil
	}

	var records []*Task
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	tasks := make([]Task, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrMalformedSnapshot, i)
		}
		if r.ID <= 0 {
			return nil, fmt.Errorf("%w: record %d has invalid id %d", ErrMalformedSnapshot, i, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrMalformedSnapshot, r.ID)
		}
		text, ok := NormalizeText(r.Text)
		if !ok {
			return nil, fmt.Errorf("%w: record %d has empty text", ErrMalformedSnapshot, i)
		}
		seen[r.ID] = struct{}{}
		tasks = append(tasks, Task{ID: r.ID, Text: text, Completed: r.Completed})
	}
	return tasks, nil
}
