package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

// Model is the Bubble Tea model for the interactive calculator.
type Model struct {
	// Core data
	session *session.Service
	state   session.State

	// UI state
	focus  Focus
	cursor int
	keys   keyMap
	help   help.Model
	styles theme.Styles

	// Error banner
	showError bool
	errorMsg  string
	errorSeq  int

	// Dimensions
	width  int
	height int
}

// NewModel creates a model driving svc.
func NewModel(svc *session.Service) Model {
	return Model{
		session: svc,
		state: session.State{
			Display: calculator.Display{Current: "0"},
			History: []string{},
			Theme:   theme.Light,
		},
		focus:  FocusKeypad,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: theme.NewStyles(theme.Light),
		width:  60,
		height: 24,
	}
}

// Init loads persisted state.
func (m Model) Init() tea.Cmd {
	return loadStateCmd(m.session)
}

// State returns the last rendered state.
func (m Model) State() session.State {
	return m.state
}

// Focus returns the panel receiving navigation keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the selected history index.
func (m Model) Cursor() int {
	return m.cursor
}

// ErrorMessage returns the banner text, or "" when no banner is shown.
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}

func (m *Model) setState(state session.State) {
	if state.Theme != m.styles.Name {
		m.styles = theme.NewStyles(state.Theme).ApplyMaxWidth(m.width)
	}
	m.state = state

	if m.cursor >= len(m.state.History) {
		m.cursor = len(m.state.History) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.state.History) == 0 {
		m.focus = FocusKeypad
	}
}

// setError shows err in the banner and schedules its dismissal.
func (m *Model) setError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.showError = true
	m.errorMsg = err.Error()
	m.errorSeq++
	return clearErrorAfter(errorBannerTimeout, m.errorSeq)
}

// MoveCursorUp moves the history cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.state.History) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.state.History) - 1
	}
}

// MoveCursorDown moves the history cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.state.History) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.state.History) {
		m.cursor = 0
	}
}
