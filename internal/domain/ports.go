package domain

// KVStore is the durable key-value store the task list and theme persist to.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key has never been written.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Close releases resources held by the store.
	Close() error
}

// KeyLister is implemented by backends that can enumerate their keys.
type KeyLister interface {
	Keys() ([]string, error)
}

// Logger records diagnostic events.
// category groups related messages (e.g. "store", "theme", "tui").
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log messages.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(_, _ string) {}

// Info discards the message.
func (NopLogger) Info(_, _ string) {}

// Warn discards the message.
func (NopLogger) Warn(_, _ string) {}

// Error discards the message.
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// ConfigManager manages the config file.
type ConfigManager interface {
	// Info returns information about the config file.
	Info() ConfigInfo
	// Init writes a commented config file rendered from cfg.
	// Returns ErrConfigExists unless force is set.
	Init(cfg *Config, force bool) error
}

// ConfigInfo describes a config file on disk.
// Fields are ordered to minimize memory padding.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// TaskStore is the task collection manager as seen by use cases and the TUI.
type TaskStore interface {
	Initialize() []Task
	Tasks() []Task
	Get(id int64) (Task, bool)
	Len() int

	Add(rawText string) (Task, bool)
	Toggle(id int64) Transition
	Edit(id int64, newText string) bool
	Delete(id int64) bool

	BeginEdit(id int64) bool
	SetWorkingCopy(text string)
	WorkingCopy() string
	Editing() (int64, bool)
	CommitEdit() bool
	CancelEdit()

	LastPersistError() error
}

// ThemeStore holds the persisted UI theme preference.
type ThemeStore interface {
	Load() Theme
	Theme() Theme
	Set(t Theme) error
	Toggle() Theme
	LastPersistError() error
}
