package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acetasks/ace/internal/app"
	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/taskstore"
)

const logCategory = "tui"

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container   *app.Container
	persistErr  error // Last task write failure, nil once a write succeeds
	themeErr    error // Last theme write failure
	unsubscribe func()

	// State (slices - contain pointers)
	tasks    []domain.Task
	pending  []tea.Cmd
	confetti []rune

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	notice string
	theme  domain.Theme

	// Numeric state (smaller types last)
	celebrationDuration time.Duration
	mode                Mode
	cursor              int
	offset              int
	width               int
	height              int
	celebrationSeq      int
	celebrating         bool
}

// New creates a new TUI Model over the container's stores.
// The task list must already be hydrated; the model subscribes to every
// later change.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 500
	ti.Prompt = ""

	duration := c.AppConfig.UI.CelebrationDuration
	if duration <= 0 {
		duration = domain.DefaultCelebrationDuration
	}
	confetti := c.AppConfig.UI.Confetti
	if confetti == "" {
		confetti = domain.DefaultConfetti
	}

	m := &Model{
		container:           c,
		tasks:               c.Tasks.Tasks(),
		keys:                DefaultKeyMap(),
		help:                help.New(),
		input:               ti,
		confetti:            []rune(confetti),
		celebrationDuration: duration,
		mode:                ModeNormal,
	}
	m.applyTheme(c.Themes.Theme())
	m.unsubscribe = c.Tasks.Subscribe(m.onChange)
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close detaches the model from the task store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(c *app.Container) error {
	m := New(c)
	defer m.Close()

	c.Logger.Debug(logCategory, "starting")
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Celebrating reports whether the completion cue is visible.
func (m *Model) Celebrating() bool {
	return m.celebrating
}

// onChange re-renders from the store's snapshot.
// It runs synchronously inside Update, so commands it needs are queued in
// m.pending and returned by Update.
func (m *Model) onChange(c taskstore.Change) {
	m.tasks = c.Tasks
	m.persistErr = c.PersistErr
	m.clampCursor()

	if m.mode == ModeEdit {
		if _, editing := m.container.Tasks.Editing(); !editing {
			m.leaveInput()
		}
	}

	if c.Kind == taskstore.ChangeToggled && c.Transition.Celebrates() {
		m.celebrate()
	}
}

// celebrate shows the completion cue and schedules its removal.
func (m *Model) celebrate() {
	m.celebrationSeq++
	m.celebrating = true
	seq := m.celebrationSeq
	m.pending = append(m.pending, tea.Tick(m.celebrationDuration, func(time.Time) tea.Msg {
		return MsgCelebrationDone{Seq: seq}
	}))
}

func (m *Model) applyTheme(t domain.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
	m.styles.applyHelp(&m.help)
	m.input.PromptStyle = m.styles.InputPrompt
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

// listHeight is the number of rows that fit between header and footer.
func (m *Model) listHeight() int {
	// App padding (2), header (2), input or spacer (2), footer (3)
	h := m.height - 9
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) leaveInput() {
	m.input.Blur()
	m.input.Reset()
	m.mode = ModeNormal
}
