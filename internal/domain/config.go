package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Log      LogConfig   `toml:"log"`
	UI       UIConfig    `toml:"ui"`
}

// Store backends.
const (
	BackendJSON   = "json"
	BackendGit    = "git"
	BackendSQLite = "sqlite"
)

// StoreConfig holds persistence settings from [store] section.
type StoreConfig struct {
	Backend   string `toml:"backend,omitempty"`   // "json" (default), "git" or "sqlite"
	Path      string `toml:"path,omitempty"`      // File, repository or database path (empty = data dir default)
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// UIConfig holds presentation settings from [ui] section.
type UIConfig struct {
	Confetti            string        `toml:"confetti,omitempty"` // Glyphs cycled by the completion cue
	CelebrationDuration time.Duration `toml:"-"`                  // How long the cue stays visible ("celebration_duration" in TOML)
}

// Default configuration values.
const (
	DefaultLogLevel            = "info"
	DefaultBackend             = BackendJSON
	DefaultNamespace           = "ace"
	DefaultConfetti            = "✦✧★·•*"
	DefaultCelebrationDuration = 1500 * time.Millisecond
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   DefaultBackend,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Confetti:            DefaultConfetti,
			CelebrationDuration: DefaultCelebrationDuration,
		},
	}
}

// StorePath returns the configured store path, or the backend's default
// location under dataDir when none is set.
func (c *Config) StorePath(dataDir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Backend {
	case BackendGit:
		return filepath.Join(dataDir, "store.git")
	case BackendSQLite:
		return filepath.Join(dataDir, "ace.db")
	default:
		return filepath.Join(dataDir, "store.json")
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Backend             string
	Namespace           string
	LogLevel            string
	Confetti            string
	CelebrationDuration string
}

// RenderConfigTemplate renders a commented config file from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:             cfg.Store.Backend,
		Namespace:           cfg.Store.Namespace,
		LogLevel:            cfg.Log.Level,
		Confetti:            cfg.UI.Confetti,
		CelebrationDuration: cfg.UI.CelebrationDuration.String(),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
