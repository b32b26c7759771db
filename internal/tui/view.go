package tui

import "strings"

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Header
	b.WriteString(m.styles.Header.Render("ace"))
	b.WriteString("  ")
	b.WriteString(m.styles.HeaderMeta.Render(m.statusText()))
	b.WriteString("\n\n")

	if m.mode == ModeHelp {
		b.WriteString(m.help.View(m.keys))
		return m.styles.App.Render(b.String())
	}

	b.WriteString(m.viewTaskList())

	// New task input
	b.WriteString("\n")
	if m.mode == ModeAdd {
		b.WriteString(m.styles.InputPrompt.Render("New: "))
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

// viewTaskList renders the rows that fit the window.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.Empty.Render("No tasks yet. Press n to add one.") + "\n"
	}

	end := m.offset + m.listHeight()
	if end > len(m.tasks) {
		end = len(m.tasks)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i, m.tasks[i]))
		b.WriteString("\n")
	}
	return b.String()
}

// viewFooter renders the celebration cue, notices and key hints.
func (m *Model) viewFooter() string {
	var lines []string

	if m.celebrating {
		lines = append(lines, m.styles.Celebration.Render(confettiLine(m.confetti, m.width-4, m.celebrationSeq)))
	}
	if m.notice != "" {
		lines = append(lines, m.styles.Notice.Render(m.notice))
	}
	if err := m.saveError(); err != nil {
		lines = append(lines, m.styles.Warning.Render("⚠ Not saved: "+err.Error()))
	}

	if m.mode.IsInputMode() {
		lines = append(lines, m.help.View(inputKeyMap{keys: m.keys}))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	return strings.Join(lines, "\n")
}

// saveError returns the write failure to warn about, if any.
func (m *Model) saveError() error {
	if m.persistErr != nil {
		return m.persistErr
	}
	return m.themeErr
}
