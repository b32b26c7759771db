package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/acetasks/ace/internal/domain"
)

// rowPrefixWidth is the width of "› 12. [x] " before the task text.
const rowPrefixWidth = 10

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to fit width display cells.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// rowTextWidth is the room left for task text on one row.
func (m *Model) rowTextWidth() int {
	// App padding is 2 cells on each side
	w := m.width - 4 - rowPrefixWidth
	if w < 10 {
		w = 10
	}
	return w
}

// renderRow renders one task: cursor, 1-based index, check box and text.
// The row being edited shows the text input instead of the stored text.
func (m *Model) renderRow(index int, task domain.Task) string {
	selected := index == m.cursor

	indicator := " "
	if selected {
		indicator = "›"
	}

	check := m.styles.Check.Render(CheckBox(task.Completed))
	if task.Completed {
		check = m.styles.CheckDone.Render(CheckBox(task.Completed))
	}

	var text string
	if id, editing := m.container.Tasks.Editing(); m.mode == ModeEdit && editing && id == task.ID {
		text = m.input.View()
	} else {
		title := truncate(escapeNewlines(task.Text), m.rowTextWidth())
		switch {
		case task.Completed:
			text = m.styles.TextDone.Render(title)
		case selected:
			text = m.styles.TextSelected.Render(title)
		default:
			text = m.styles.Text.Render(title)
		}
	}

	return m.styles.Cursor.Render(indicator) + " " +
		m.styles.Index.Render(fmt.Sprintf("%2d.", index+1)) + " " +
		check + " " + text
}

// confettiLine fills width cells with the confetti glyphs, rotated by seq
// so consecutive completions look different.
func confettiLine(glyphs []rune, width, seq int) string {
	if len(glyphs) == 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for i := 0; ; i++ {
		g := glyphs[(i+seq)%len(glyphs)]
		w := runewidth.RuneWidth(g)
		if w == 0 {
			w = 1
		}
		if used+w > width {
			break
		}
		b.WriteRune(g)
		used += w
	}
	return b.String()
}
