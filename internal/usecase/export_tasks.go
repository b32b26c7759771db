package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/acetasks/ace/internal/domain"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // "json" (default) or "yaml"
}

// ExportTasksOutput contains the rendered export.
type ExportTasksOutput struct {
	Data  []byte
	Count int
}

// exportRecord is the YAML shape of a task.
type exportRecord struct {
	Text      string `yaml:"text"`
	ID        int64  `yaml:"id"`
	Completed bool   `yaml:"completed"`
}

// ExportTasks renders the collection in a portable format.
type ExportTasks struct {
	tasks domain.TaskStore
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskStore) *ExportTasks {
	return &ExportTasks{
		tasks: tasks,
	}
}

// Execute renders all tasks. The JSON form is the persisted snapshot, indented.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.Tasks()

	var data []byte
	switch in.Format {
	case "", FormatJSON:
		raw, err := domain.EncodeSnapshot(tasks)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, fmt.Errorf("indent snapshot: %w", err)
		}
		buf.WriteByte('\n')
		data = buf.Bytes()
	case FormatYAML:
		records := make([]exportRecord, len(tasks))
		for i, t := range tasks {
			records[i] = exportRecord{ID: t.ID, Text: t.Text, Completed: t.Completed}
		}
		out, err := yaml.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		data = out
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, in.Format)
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
