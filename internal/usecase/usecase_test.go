package usecase

import (
	"testing"

	"github.com/acetasks/ace/internal/taskstore"
	"github.com/acetasks/ace/internal/testutil"
)

// newTestTasks returns an initialized store over an in-memory backend.
func newTestTasks(t *testing.T, texts ...string) (*taskstore.Store, *testutil.MockKVStore) {
	t.Helper()
	kv := testutil.NewMockKVStore()
	store := taskstore.New(kv, nil)
	store.Initialize()
	for _, text := range texts {
		store.Add(text)
	}
	return store, kv
}
