package usecase

import (
	"context"
	"fmt"

	"github.com/acetasks/ace/internal/domain"
)

// SetThemeInput contains the parameters for changing the theme.
// Toggle takes precedence over Theme.
type SetThemeInput struct {
	Theme  string // "dark" or "light"
	Toggle bool   // Switch to the other theme
}

// SetThemeOutput contains the theme after the change.
type SetThemeOutput struct {
	Theme domain.Theme
}

// SetTheme is the use case for changing the persisted theme preference.
type SetTheme struct {
	themes domain.ThemeStore
}

// NewSetTheme creates a new SetTheme use case.
func NewSetTheme(themes domain.ThemeStore) *SetTheme {
	return &SetTheme{
		themes: themes,
	}
}

// Execute applies the change and writes it through.
func (uc *SetTheme) Execute(_ context.Context, in SetThemeInput) (*SetThemeOutput, error) {
	if in.Toggle {
		uc.themes.Toggle()
	} else if err := uc.themes.Set(domain.Theme(in.Theme)); err != nil {
		return nil, err
	}

	if err := uc.themes.LastPersistError(); err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}

	return &SetThemeOutput{Theme: uc.themes.Theme()}, nil
}
