package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSnapshot_RecordLayout(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "Write report", Completed: false},
		{ID: 2, Text: "Buy milk", Completed: true},
	}

	data, err := EncodeSnapshot(tasks)

	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":1,"text":"Write report","completed":false},{"id":2,"text":"Buy milk","completed":true}]`,
		string(data))
}

func TestEncodeSnapshot_EmptyIsArray(t *testing.T) {
	data, err := EncodeSnapshot(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tasks := []Task{
		{ID: 3, Text: "C", Completed: true},
		{ID: 1, Text: "A"},
		{ID: 2, Text: "B"},
	}

	data, err := EncodeSnapshot(tasks)
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, tasks, got, "order and field values must survive the round trip")
}

func TestDecodeSnapshot_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "null", "[]"} {
		t.Run(input, func(t *testing.T) {
			got, err := DecodeSnapshot([]byte(input))
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NotNil(t, got)
		})
	}
}

func TestDecodeSnapshot_OriginalTimestampIDs(t *testing.T) {
	// Snapshots from the browser version use Date.now() ids and untrimmed text.
	data := []byte(`[{"id":1718000000123,"text":"  Water plants ","completed":false}]`)

	got, err := DecodeSnapshot(data)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1718000000123), got[0].ID)
	assert.Equal(t, "Water plants", got[0].Text)
}

func TestDecodeSnapshot_TrimsText(t *testing.T) {
	data := []byte(`[{"id":1,"text":"\t Buy milk  \n","completed":true},{"id":2,"text":"Plain","completed":false}]`)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, []Task{
		{ID: 1, Text: "Buy milk", Completed: true},
		{ID: 2, Text: "Plain"},
	}, got)

	// Re-encoding stores the trimmed text, not the original bytes.
	encoded, err := EncodeSnapshot(got)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":1,"text":"Buy milk","completed":true},{"id":2,"text":"Plain","completed":false}]`,
		string(encoded))
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid json", input: `[{"id":1,`},
		{name: "object instead of array", input: `{"id":1,"text":"a"}`},
		{name: "string instead of array", input: `"tasks"`},
		{name: "null record", input: `[null]`},
		{name: "missing id", input: `[{"text":"a"}]`},
		{name: "negative id", input: `[{"id":-4,"text":"a"}]`},
		{name: "duplicate ids", input: `[{"id":1,"text":"a"},{"id":1,"text":"b"}]`},
		{name: "empty text", input: `[{"id":1,"text":""}]`},
		{name: "whitespace text", input: `[{"id":1,"text":"   "}]`},
		{name: "wrong field type", input: `[{"id":"one","text":"a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSnapshot([]byte(tt.input))
			assert.ErrorIs(t, err, ErrMalformedSnapshot)
			assert.Nil(t, got)
		})
	}
}
