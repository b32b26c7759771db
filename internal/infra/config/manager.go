package config

import (
	"os"
	"path/filepath"

	"github.com/acetasks/ace/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file.
type Manager struct {
	path string // Path to config.toml
}

// NewManager creates a Manager for the given config file path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// Init writes a commented config file rendered from cfg.
// Returns domain.ErrConfigExists unless force is set.
func (m *Manager) Init(cfg *domain.Config, force bool) error {
	// Check if file already exists
	if _, err := os.Stat(m.path); err == nil && !force {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(m.path, []byte(content), 0o600)
}
