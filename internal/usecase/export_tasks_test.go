package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/acetasks/ace/internal/domain"
)

func TestExportTasks_JSON(t *testing.T) {
	tasks, _ := newTestTasks(t, "A", "B")
	tasks.Toggle(tasks.Tasks()[0].ID)

	out, err := NewExportTasks(tasks).Execute(context.Background(), ExportTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	decoded, err := domain.DecodeSnapshot(out.Data)
	require.NoError(t, err)
	assert.Equal(t, tasks.Tasks(), decoded)
	assert.Contains(t, string(out.Data), "\n  {")
}

func TestExportTasks_JSONEmpty(t *testing.T) {
	tasks, _ := newTestTasks(t)

	out, err := NewExportTasks(tasks).Execute(context.Background(), ExportTasksInput{Format: FormatJSON})

	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out.Data))
}

func TestExportTasks_YAML(t *testing.T) {
	tasks, _ := newTestTasks(t, "Write report")
	id := tasks.Tasks()[0].ID

	out, err := NewExportTasks(tasks).Execute(context.Background(), ExportTasksInput{Format: FormatYAML})

	require.NoError(t, err)
	var records []exportRecord
	require.NoError(t, yaml.Unmarshal(out.Data, &records))
	assert.Equal(t, []exportRecord{{ID: id, Text: "Write report"}}, records)
	assert.Contains(t, string(out.Data), "text: Write report")
}

func TestExportTasks_UnsupportedFormat(t *testing.T) {
	tasks, _ := newTestTasks(t)

	_, err := NewExportTasks(tasks).Execute(context.Background(), ExportTasksInput{Format: "csv"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
