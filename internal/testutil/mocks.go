// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/acetasks/ace/internal/domain"
)

// MockKVStore is an in-memory test double for domain.KVStore.
// Fields are ordered to minimize memory padding.
type MockKVStore struct {
	Values   map[string][]byte
	SetErr   error
	GetErr   error
	CloseErr error
	Sets     []string // Keys passed to Set, in call order (including failed calls)
	Gets     []string // Keys passed to Get, in call order
	KeysErr  error
	Closed   bool
}

// NewMockKVStore creates a new MockKVStore with an initialized map.
func NewMockKVStore() *MockKVStore {
	return &MockKVStore{
		Values: make(map[string][]byte),
	}
}

// Get returns the stored value or domain.ErrKeyNotFound.
func (m *MockKVStore) Get(key string) ([]byte, error) {
	m.Gets = append(m.Gets, key)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value.
func (m *MockKVStore) Set(key string, value []byte) error {
	m.Sets = append(m.Sets, key)
	if m.SetErr != nil {
		return m.SetErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.Values[key] = stored
	return nil
}

// Keys returns the stored keys in no particular order.
func (m *MockKVStore) Keys() ([]string, error) {
	if m.KeysErr != nil {
		return nil, m.KeysErr
	}
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close marks the store closed.
func (m *MockKVStore) Close() error {
	m.Closed = true
	return m.CloseErr
}

// WriteCount returns how many times Set was called for key.
func (m *MockKVStore) WriteCount(key string) int {
	n := 0
	for _, k := range m.Sets {
		if k == key {
			n++
		}
	}
	return n
}

// Ensure MockKVStore implements domain.KVStore and domain.KeyLister.
var (
	_ domain.KVStore   = (*MockKVStore)(nil)
	_ domain.KeyLister = (*MockKVStore)(nil)
)

// LogEntry is a single message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry the way the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger records log messages for assertions.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// ByLevel returns the recorded entries at the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr   error
	InitCfg   *domain.Config
	FileInfo  domain.ConfigInfo
	InitCalls int
	InitForce bool
}

// Info returns FileInfo.
func (m *MockConfigManager) Info() domain.ConfigInfo {
	return m.FileInfo
}

// Init records the call and returns InitErr.
func (m *MockConfigManager) Init(cfg *domain.Config, force bool) error {
	m.InitCalls++
	m.InitCfg = cfg
	m.InitForce = force
	if m.InitErr != nil {
		return m.InitErr
	}
	m.FileInfo.Exists = true
	m.FileInfo.Content = domain.RenderConfigTemplate(cfg)
	return nil
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)
