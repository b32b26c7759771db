// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/acetasks/ace/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml
}

// NewLoader creates a Loader for the default config path.
func NewLoader() *Loader {
	return &Loader{path: DefaultPath()}
}

// NewLoaderWithPath creates a Loader for an explicit config file.
// This is used by --config and by tests.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the config file path the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// DefaultPath returns $XDG_CONFIG_HOME/ace/config.toml (or ~/.config/ace/config.toml).
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ConfigPath(configHome)
}

// DefaultDataDir returns $XDG_DATA_HOME/ace (or ~/.local/share/ace).
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), domain.AppDirName)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Load returns the configuration file merged over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.path == "" {
		return base, nil
	}

	file, err := l.loadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", l.path, err)
	}

	return mergeConfigs(base, file), nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	invalid := func(section, key string, v any) {
		warnings = append(warnings, fmt.Sprintf("invalid value in [%s]: %s = %v", section, key, v))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "store":
			for k, v := range m {
				s, isString := v.(string)
				switch k {
				case "backend":
					if !isString {
						invalid(section, k, v)
						continue
					}
					switch s {
					case domain.BackendJSON, domain.BackendGit, domain.BackendSQLite:
						res.Store.Backend = s
					default:
						invalid(section, k, v)
					}
				case "path":
					if !isString {
						invalid(section, k, v)
						continue
					}
					res.Store.Path = s
				case "namespace":
					if !isString {
						invalid(section, k, v)
						continue
					}
					res.Store.Namespace = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					} else {
						invalid(section, k, v)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "confetti":
					if s, ok := v.(string); ok && s != "" {
						res.UI.Confetti = s
					} else {
						invalid(section, k, v)
					}
				case "celebration_duration":
					d, ok := parseDuration(v)
					if !ok {
						invalid(section, k, v)
						continue
					}
					res.UI.CelebrationDuration = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseDuration accepts a Go duration string ("1.5s") or an integer number of milliseconds.
func parseDuration(v any) (time.Duration, bool) {
	switch val := v.(type) {
	case string:
		d, err := time.ParseDuration(val)
		if err != nil || d <= 0 {
			return 0, false
		}
		return d, true
	case int64:
		if val <= 0 {
			return 0, false
		}
		return time.Duration(val) * time.Millisecond, true
	}
	return 0, false
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store: base.Store,
		Log:   base.Log,
		UI:    base.UI,
	}

	// Keep warnings from both sides; nil when there are none
	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Backend != "" {
		result.Store.Backend = override.Store.Backend
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Store.Namespace != "" {
		result.Store.Namespace = override.Store.Namespace
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.UI.Confetti != "" {
		result.UI.Confetti = override.UI.Confetti
	}
	if override.UI.CelebrationDuration > 0 {
		result.UI.CelebrationDuration = override.UI.CelebrationDuration
	}

	return result
}
