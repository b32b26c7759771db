package gitstore

import (
	"sort"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acetasks/ace/internal/domain"
)

func setupTestRepo(t *testing.T) *git.Repository {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)
	return repo
}

func TestStore_GetMissing(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")

	_, err := store.Get(domain.TasksKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")
	snapshot := []byte(`[{"id":1,"text":"Write report","completed":false}]`)

	require.NoError(t, store.Set(domain.TasksKey, snapshot))

	got, err := store.Get(domain.TasksKey)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestStore_Overwrite(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")

	require.NoError(t, store.Set(domain.ThemeKey, []byte("dark")))
	require.NoError(t, store.Set(domain.ThemeKey, []byte("light")))

	got, err := store.Get(domain.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", string(got))
}

func TestStore_EmptyValue(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")

	require.NoError(t, store.Set("empty", []byte{}))

	got, err := store.Get("empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_LargeValue(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")
	value := make([]byte, 256*1024)
	for i := range value {
		value[i] = byte('a' + i%26)
	}

	require.NoError(t, store.Set(domain.TasksKey, value))

	got, err := store.Get(domain.TasksKey)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestStore_RefLayout(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "ace-test")

	require.NoError(t, store.Set(domain.TasksKey, []byte("[]")))

	_, err := repo.Reference(plumbing.ReferenceName("refs/ace-test/kv/tasks"), true)
	require.NoError(t, err)
	_, err = repo.Reference(plumbing.ReferenceName("refs/ace-test/meta"), true)
	require.NoError(t, err)
}

func TestStore_NamespaceIsolation(t *testing.T) {
	repo := setupTestRepo(t)
	a := NewWithRepo(repo, "alice")
	b := NewWithRepo(repo, "bob")

	require.NoError(t, a.Set(domain.ThemeKey, []byte("light")))

	_, err := b.Get(domain.ThemeKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStore_DefaultNamespace(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "")

	require.NoError(t, store.Set(domain.ThemeKey, []byte("dark")))

	_, err := repo.Reference(plumbing.ReferenceName("refs/ace/kv/theme"), true)
	assert.NoError(t, err)
}

func TestStore_Keys(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")
	require.NoError(t, store.Set(domain.TasksKey, []byte("[]")))
	require.NoError(t, store.Set(domain.ThemeKey, []byte("dark")))

	keys, err := store.Keys()
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"tasks", "theme"}, keys)
}

func TestStore_InvalidKey(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")

	assert.Error(t, store.Set("", []byte("x")))
	assert.Error(t, store.Set("bad key", []byte("x")))
}

func TestStore_Meta(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	version, writes, _, err := store.Meta()
	require.NoError(t, err)
	assert.Equal(t, 0, version)
	assert.Equal(t, 0, writes)

	require.NoError(t, store.Set(domain.TasksKey, []byte("[]")))
	require.NoError(t, store.Set(domain.ThemeKey, []byte("dark")))

	version, writes, updatedAt, err := store.Meta()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
	assert.Equal(t, 2, writes)
	assert.True(t, fixed.Equal(updatedAt))
}

func TestStore_Close(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "ace-test")
	assert.NoError(t, store.Close())
}
