package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/acetasks/ace/internal/domain"
)

// Palette defines the colors for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Selected  lipgloss.Color
	Done      lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Confetti  lipgloss.Color
}

// DarkPalette is used with domain.ThemeDark.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow
	Done:      lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Amber
	Error:     lipgloss.Color("#D63031"), // Red
	Confetti:  lipgloss.Color("#FD79A8"), // Pink
}

// LightPalette is used with domain.ThemeLight.
var LightPalette = Palette{
	Primary:   lipgloss.Color("#5B4BC4"), // Deep purple
	Secondary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#8A9499"), // Gray
	Text:      lipgloss.Color("#2D3436"), // Charcoal
	Selected:  lipgloss.Color("#B8860B"), // Dark gold
	Done:      lipgloss.Color("#00866B"), // Dark green
	Warning:   lipgloss.Color("#C47F00"), // Ochre
	Error:     lipgloss.Color("#B71C1C"), // Dark red
	Confetti:  lipgloss.Color("#E84393"), // Magenta
}

// PaletteFor returns the palette for the given theme.
func PaletteFor(t domain.Theme) Palette {
	if t == domain.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderMeta lipgloss.Style

	// Task rows
	Cursor       lipgloss.Style
	Index        lipgloss.Style
	Check        lipgloss.Style
	CheckDone    lipgloss.Style
	Text         lipgloss.Style
	TextSelected lipgloss.Style
	TextDone     lipgloss.Style
	Empty        lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Footer
	Celebration lipgloss.Style
	Notice      lipgloss.Style
	Warning     lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

// NewStyles returns the styles for the given theme.
func NewStyles(t domain.Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		HeaderMeta: lipgloss.NewStyle().
			Foreground(p.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Selected).
			Bold(true),

		Index: lipgloss.NewStyle().
			Foreground(p.Muted),

		Check: lipgloss.NewStyle().
			Foreground(p.Secondary),

		CheckDone: lipgloss.NewStyle().
			Foreground(p.Done).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(p.Text),

		TextSelected: lipgloss.NewStyle().
			Foreground(p.Selected).
			Bold(true),

		TextDone: lipgloss.NewStyle().
			Foreground(p.Muted).
			Strikethrough(true),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		InputPrompt: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Celebration: lipgloss.NewStyle().
			Foreground(p.Confetti).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(p.Error),

		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Secondary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpSep: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// applyHelp copies the help styles onto a help.Model.
func (s Styles) applyHelp(h *help.Model) {
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpSep
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	h.Styles.FullSeparator = s.HelpSep
}

// CheckBox returns the check box glyph for a task.
func CheckBox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
