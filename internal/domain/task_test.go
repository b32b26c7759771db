package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "plain text", input: "Buy milk", want: "Buy milk", wantOK: true},
		{name: "surrounding spaces", input: "  Buy milk  ", want: "Buy milk", wantOK: true},
		{name: "tabs and newlines", input: "\tWrite report\n", want: "Write report", wantOK: true},
		{name: "inner spaces kept", input: "a   b", want: "a   b", wantOK: true},
		{name: "empty", input: "", want: "", wantOK: false},
		{name: "whitespace only", input: "   ", want: "", wantOK: false},
		{name: "mixed whitespace only", input: " \t\n ", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeText(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		transition Transition
		str        string
		celebrates bool
	}{
		{TransitionNone, "none", false},
		{TransitionCompleted, "completed", true},
		{TransitionReopened, "reopened", false},
		{Transition(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.transition.String())
			assert.Equal(t, tt.celebrates, tt.transition.Celebrates())
		})
	}
}

func TestCloneTasks_DoesNotShareBackingArray(t *testing.T) {
	original := []Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}

	clone := CloneTasks(original)
	clone[0].Text = "changed"

	assert.Equal(t, "a", original[0].Text)
	assert.Len(t, clone, 2)
}

func TestCloneTasks_Nil(t *testing.T) {
	clone := CloneTasks(nil)
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestIndexOf(t *testing.T) {
	tasks := []Task{{ID: 10}, {ID: 20}, {ID: 30}}

	assert.Equal(t, 0, IndexOf(tasks, 10))
	assert.Equal(t, 2, IndexOf(tasks, 30))
	assert.Equal(t, -1, IndexOf(tasks, 99))
	assert.Equal(t, -1, IndexOf(nil, 1))
}

func TestMaxID(t *testing.T) {
	assert.Equal(t, int64(0), MaxID(nil))
	assert.Equal(t, int64(7), MaxID([]Task{{ID: 3}, {ID: 7}, {ID: 5}}))
	assert.Equal(t, int64(1718000000123), MaxID([]Task{{ID: 1718000000123}, {ID: 2}}))
}
