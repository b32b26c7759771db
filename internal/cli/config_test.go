package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/testutil"
)

// =============================================================================
// Theme Command Tests
// =============================================================================

func TestThemeCommand_Show(t *testing.T) {
	e, _, _ := newTestEnv(t)

	out, err := execute(t, newThemeCommand(e))
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, newThemeCommand(e), "show")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeCommand_Toggle(t *testing.T) {
	e, c, kv := newTestEnv(t)

	out, err := execute(t, newThemeCommand(e), "toggle")

	require.NoError(t, err)
	assert.Equal(t, "Theme set to light\n", out)
	assert.Equal(t, domain.ThemeLight, c.Themes.Theme())
	assert.Equal(t, "light", string(kv.Values[domain.ThemeKey]))
}

func TestThemeCommand_Set(t *testing.T) {
	e, c, _ := newTestEnv(t)

	out, err := execute(t, newThemeCommand(e), "set", "light")

	require.NoError(t, err)
	assert.Equal(t, "Theme set to light\n", out)
	assert.Equal(t, domain.ThemeLight, c.Themes.Theme())
}

func TestThemeCommand_SetInvalid(t *testing.T) {
	e, c, _ := newTestEnv(t)

	_, err := execute(t, newThemeCommand(e), "set", "sepia")

	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
	assert.Equal(t, domain.ThemeDark, c.Themes.Theme())
}

// =============================================================================
// Export Command Tests
// =============================================================================

func TestExportCommand_JSON(t *testing.T) {
	e, c, _ := newTestEnv(t)
	c.Tasks.Add("Buy milk")

	out, err := execute(t, newExportCommand(e))

	require.NoError(t, err)
	decoded, err := domain.DecodeSnapshot([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, c.Tasks.Tasks(), decoded)
}

func TestExportCommand_YAML(t *testing.T) {
	e, c, _ := newTestEnv(t)
	c.Tasks.Add("Buy milk")

	out, err := execute(t, newExportCommand(e), "--format", "yaml")

	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Buy milk", records[0]["text"])
	assert.Equal(t, false, records[0]["completed"])
}

func TestExportCommand_UnsupportedFormat(t *testing.T) {
	e, _, _ := newTestEnv(t)

	_, err := execute(t, newExportCommand(e), "-f", "csv")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

// =============================================================================
// Config Command Tests
// =============================================================================

func TestConfigShowCommand(t *testing.T) {
	e, _, _ := newTestEnv(t)

	out, err := execute(t, newConfigCommand(e), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n- /cfg/config.toml (not found)")
	assert.Contains(t, out, "- store: /data/store.json")
	assert.Contains(t, out, "- log: /data/logs/ace.log")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "json")
	assert.Contains(t, out, "celebration_duration")
	assert.Contains(t, out, "1.5s")
}

func TestConfigShowCommand_ExistingFile(t *testing.T) {
	e, c, _ := newTestEnv(t)
	mgr := c.ConfigManager.(*testutil.MockConfigManager)
	mgr.FileInfo.Exists = true

	out, err := execute(t, newConfigCommand(e), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "- /cfg/config.toml\n")
	assert.NotContains(t, out, "(not found)")
}

func TestConfigShowCommand_StoredKeys(t *testing.T) {
	// Setup
	e, c, _ := newTestEnv(t)
	c.Tasks.Add("Buy milk")
	c.Themes.Toggle()

	// Execute
	out, err := execute(t, newConfigCommand(e), "show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "[Stored Keys]\n- tasks\n- theme\n")
}

func TestConfigShowCommand_NoStoredKeys(t *testing.T) {
	e, _, _ := newTestEnv(t)

	out, err := execute(t, newConfigCommand(e), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Stored Keys]\n- (none)\n")
}

func TestConfigInitCommand(t *testing.T) {
	e, c, _ := newTestEnv(t)
	mgr := c.ConfigManager.(*testutil.MockConfigManager)

	out, err := execute(t, newConfigCommand(e), "init", "--force")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: /cfg/config.toml\n", out)
	assert.Equal(t, 1, mgr.InitCalls)
	assert.True(t, mgr.InitForce)
}

func TestConfigInitCommand_Exists(t *testing.T) {
	e, c, _ := newTestEnv(t)
	c.ConfigManager.(*testutil.MockConfigManager).InitErr = domain.ErrConfigExists

	_, err := execute(t, newConfigCommand(e), "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Contains(t, err.Error(), "--force")
}

func TestConfigInitCommand_WithoutStore(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	e := &env{}
	e.opts.ConfigPath = path

	// Execute
	out, err := execute(t, newConfigCommand(e), "init")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", out)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[store]")

	_, err = execute(t, newConfigCommand(e), "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigTemplateCommand(t *testing.T) {
	out, err := execute(t, newConfigTemplateCommand())

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), out)
}
