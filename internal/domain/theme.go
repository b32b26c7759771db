package domain

// Theme is the two-valued UI theme preference.
type Theme string

// Theme values.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	DefaultTheme = ThemeDark
)

// ParseTheme converts a stored value into a Theme.
// Unknown values fall back to DefaultTheme.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s)
	}
	return DefaultTheme
}

// IsValid returns true if the theme is one of the known values.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Display returns the string representation of the theme.
func (t Theme) Display() string {
	return string(t)
}
