package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acetasks/ace/internal/app"
	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/testutil"
)

// stubOpener returns an Opener serving one in-memory container and
// recording the options it was called with.
func stubOpener(t *testing.T, warnings ...string) (Opener, *testutil.MockKVStore, *[]app.Options) {
	t.Helper()
	kv := testutil.NewMockKVStore()
	var calls []app.Options
	open := func(opts app.Options) (*app.Container, error) {
		calls = append(calls, opts)
		cfg := domain.NewDefaultConfig()
		cfg.Warnings = warnings
		return app.NewWithDeps(app.Config{}, cfg, kv, &testutil.MockConfigManager{}, nil), nil
	}
	return open, kv, &calls
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	// Setup
	open, kv, calls := stubOpener(t)
	root := NewRootCommand(open, "test")

	// Execute
	out, err := execute(t, root, "--config", "/tmp/ace.toml", "--store", "sqlite", "--store-path", "/tmp/ace.db", "add", "Buy milk")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Added task #1\n", out)
	require.Len(t, *calls, 1)
	assert.Equal(t, app.Options{ConfigPath: "/tmp/ace.toml", Backend: "sqlite", StorePath: "/tmp/ace.db"}, (*calls)[0])
	assert.True(t, kv.Closed, "container is closed after the command")
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	open, _, _ := stubOpener(t, "unknown key: colour")
	root := NewRootCommand(open, "test")

	out, err := execute(t, root, "ls")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: unknown key: colour\n")
	assert.Contains(t, out, "No tasks\n")
}

func TestRootCommand_OpenError(t *testing.T) {
	root := NewRootCommand(func(app.Options) (*app.Container, error) {
		return nil, domain.ErrUnknownBackend
	}, "test")

	_, err := execute(t, root, "ls")

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestRootCommand_ConfigTemplateSkipsStore(t *testing.T) {
	opened := false
	root := NewRootCommand(func(app.Options) (*app.Container, error) {
		opened = true
		return nil, errors.New("should not open")
	}, "test")

	out, err := execute(t, root, "config", "template")

	require.NoError(t, err)
	assert.False(t, opened)
	assert.Contains(t, out, "[store]")
}

func TestRootCommand_Version(t *testing.T) {
	open, _, calls := stubOpener(t)
	root := NewRootCommand(open, "1.2.3")

	out, err := execute(t, root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Empty(t, *calls)
}

func TestRootCommand_NoArgsLaunchesTUI(t *testing.T) {
	// Setup
	orig := launchTUIFunc
	defer func() { launchTUIFunc = orig }()

	var launched *app.Container
	launchTUIFunc = func(c *app.Container) error {
		launched = c
		return nil
	}
	open, _, _ := stubOpener(t)

	// Execute
	_, err := execute(t, NewRootCommand(open, "test"))

	// Assert
	require.NoError(t, err)
	require.NotNil(t, launched)
}

func TestRootCommand_TUICommand(t *testing.T) {
	orig := launchTUIFunc
	defer func() { launchTUIFunc = orig }()

	calls := 0
	launchTUIFunc = func(*app.Container) error {
		calls++
		return nil
	}
	open, _, _ := stubOpener(t)

	_, err := execute(t, NewRootCommand(open, "test"), "tui")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRootCommand_RejectsUnknownArgs(t *testing.T) {
	open, _, _ := stubOpener(t)

	_, err := execute(t, NewRootCommand(open, "test"), "frobnicate")

	assert.Error(t, err)
}

func TestRootCommand_PersistsAcrossRuns(t *testing.T) {
	for _, backend := range []string{domain.BackendJSON, domain.BackendGit, domain.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			// Setup: a real container in a temp data directory
			dir := t.TempDir()
			open := func(opts app.Options) (*app.Container, error) {
				opts.DataDir = filepath.Join(dir, "data")
				return app.New(opts)
			}
			config := filepath.Join(dir, "config.toml")

			// Execute
			_, err := execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "add", "Buy milk")
			require.NoError(t, err)
			_, err = execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "done", "1")
			require.NoError(t, err)
			_, err = execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "theme", "toggle")
			require.NoError(t, err)

			// Assert
			out, err := execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "ls")
			require.NoError(t, err)
			assert.Equal(t, "#1 [x] Buy milk (id 1)\n", out)

			out, err = execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "theme")
			require.NoError(t, err)
			assert.Equal(t, "light\n", out)

			out, err = execute(t, NewRootCommand(open, "test"), "--config", config, "--store", backend, "config", "show")
			require.NoError(t, err)
			assert.Contains(t, out, "[Stored Keys]\n- tasks\n- theme\n")
		})
	}
}
