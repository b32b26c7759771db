package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acetasks/ace/internal/domain"
)

func TestManager_Info(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)
		configContent := "[log]\nlevel = \"debug\""
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0o644))

		info := NewManager(path).Info()

		assert.Equal(t, path, info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)

		info := NewManager(path).Info()

		assert.Equal(t, path, info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_Init(t *testing.T) {
	t.Run("creates config file with parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ace", domain.ConfigFileName)
		manager := NewManager(path)

		err := manager.Init(domain.NewDefaultConfig(), false)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[store]")
		assert.Contains(t, string(content), `# backend = "json"`)
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

		err := NewManager(path).Init(domain.NewDefaultConfig(), false)

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(path)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("force overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

		err := NewManager(path).Init(domain.NewDefaultConfig(), true)

		require.NoError(t, err)
		content, _ := os.ReadFile(path)
		assert.Contains(t, string(content), "# ace configuration")
	})
}
