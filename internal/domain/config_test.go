package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	assert.Equal(t, DefaultNamespace, cfg.Store.Namespace)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultConfetti, cfg.UI.Confetti)
	assert.Equal(t, DefaultCelebrationDuration, cfg.UI.CelebrationDuration)
}

func TestConfig_StorePath(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		path    string
		want    string
	}{
		{name: "json default", backend: BackendJSON, want: "/data/ace/store.json"},
		{name: "git default", backend: BackendGit, want: "/data/ace/store.git"},
		{name: "sqlite default", backend: BackendSQLite, want: "/data/ace/ace.db"},
		{name: "explicit path wins", backend: BackendSQLite, path: "/tmp/x.db", want: "/tmp/x.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Store.Backend = tt.backend
			cfg.Store.Path = tt.path
			assert.Equal(t, tt.want, cfg.StorePath("/data/ace"))
		})
	}
}

func TestRenderConfigTemplate(t *testing.T) {
	out := RenderConfigTemplate(NewDefaultConfig())

	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, `# backend = "json"`)
	assert.Contains(t, out, `# namespace = "ace"`)
	assert.Contains(t, out, "[log]")
	assert.Contains(t, out, `# level = "info"`)
	assert.Contains(t, out, `# celebration_duration = "1.5s"`)
	assert.False(t, strings.Contains(out, "<<"), "template delimiters must be expanded")
}
