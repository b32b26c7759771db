package taskstore

import (
	"errors"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

const themeLogCategory = "theme"

// ThemeStore holds the UI theme preference and persists it under
// domain.ThemeKey. It has no interaction with the task collection.
type ThemeStore struct {
	kv         domain.KVStore
	logger     domain.Logger
	persistErr error
	theme      domain.Theme
}

// NewThemeStore creates a ThemeStore starting from domain.DefaultTheme.
func NewThemeStore(kv domain.KVStore, logger domain.Logger) *ThemeStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ThemeStore{
		kv:     kv,
		logger: logger,
		theme:  domain.DefaultTheme,
	}
}

// Load reads the stored preference. Absent or unknown values yield the default.
func (s *ThemeStore) Load() domain.Theme {
	data, err := s.kv.Get(domain.ThemeKey)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		s.theme = domain.DefaultTheme
	case err != nil:
		s.logger.Warn(themeLogCategory, fmt.Sprintf("read theme: %v; using %s", err, domain.DefaultTheme))
		s.theme = domain.DefaultTheme
	default:
		s.theme = domain.ParseTheme(string(data))
		if string(s.theme) != string(data) {
			s.logger.Warn(themeLogCategory, fmt.Sprintf("unknown theme %q; using %s", data, s.theme))
		}
	}
	return s.theme
}

// Theme returns the current preference.
func (s *ThemeStore) Theme() domain.Theme {
	return s.theme
}

// Set changes the preference and writes it through.
// Invalid themes are ignored and reported with domain.ErrInvalidTheme.
func (s *ThemeStore) Set(t domain.Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTheme, t)
	}
	s.theme = t
	s.persist()
	return nil
}

// Toggle switches between dark and light and returns the new theme.
func (s *ThemeStore) Toggle() domain.Theme {
	s.theme = s.theme.Toggle()
	s.persist()
	return s.theme
}

// LastPersistError returns the most recent write failure, or nil.
func (s *ThemeStore) LastPersistError() error {
	return s.persistErr
}

func (s *ThemeStore) persist() {
	if err := s.kv.Set(domain.ThemeKey, []byte(s.theme)); err != nil {
		s.persistErr = fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		s.logger.Error(themeLogCategory, s.persistErr.Error())
		return
	}
	s.persistErr = nil
	s.logger.Info(themeLogCategory, "theme set to "+s.theme.Display())
}

// Ensure ThemeStore implements domain.ThemeStore.
var _ domain.ThemeStore = (*ThemeStore)(nil)
