package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKeyMsg(msg)
		return model, m.withPending(cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = m.rowTextWidth()
		m.scrollToCursor()
		return m, nil

	case MsgCelebrationDone:
		// A newer completion owns the cue
		if msg.Seq == m.celebrationSeq {
			m.celebrating = false
		}
		return m, nil
	}

	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// withPending appends the commands queued by store notifications.
func (m *Model) withPending(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := append([]tea.Cmd{cmd}, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear notice on any key press
	m.notice = ""

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.scrollToCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
			m.scrollToCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeAdd
		m.input.Reset()
		m.input.Placeholder = "What needs doing?"
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.SelectedTask(); ok {
			m.container.Tasks.Toggle(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok || !m.container.Tasks.BeginEdit(task.ID) {
			return m, nil
		}
		m.mode = ModeEdit
		m.input.Placeholder = ""
		m.input.SetValue(m.container.Tasks.WorkingCopy())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.SelectedTask(); ok {
			m.container.Tasks.Delete(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(m.container.Themes.Toggle())
		m.themeErr = m.container.Themes.LastPersistError()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		m.leaveInput()
		if _, added := m.container.Tasks.Add(text); added {
			m.cursor = len(m.tasks) - 1
			m.scrollToCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.container.Tasks

	switch {
	case key.Matches(msg, m.keys.Cancel):
		tasks.CancelEdit()
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		tasks.SetWorkingCopy(m.input.Value())
		if !tasks.CommitEdit() {
			// The session stays open so the text can be fixed
			m.notice = "Task text cannot be empty (esc to cancel)"
			return m, nil
		}
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	tasks.SetWorkingCopy(m.input.Value())
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// Any other key closes help
	m.mode = ModeNormal
	m.help.ShowAll = false
	return m, nil
}

// statusText summarizes the collection for the header.
func (m *Model) statusText() string {
	done := 0
	for _, t := range m.tasks {
		if t.Completed {
			done++
		}
	}
	noun := "tasks"
	if len(m.tasks) == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s · %d done · %s", len(m.tasks), noun, done, m.theme.Display())
}
