package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.styles = m.styles.ApplyMaxWidth(m.width)
		return m, nil

	case StateLoadedMsg:
		m.setState(msg.State)
		cmd := m.setError(msg.Err)
		return m, cmd

	case ClearErrorMsg:
		if msg.Seq == m.errorSeq {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on the focused panel
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case msg.String() == "esc" && m.showError:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == FocusHistory || len(m.state.History) == 0 {
			m.focus = FocusKeypad
		} else {
			m.focus = FocusHistory
		}
		return m, nil
	}

	if m.focus == FocusHistory {
		return m.handleHistoryKeys(msg)
	}
	return m.handleKeypadKeys(msg)
}

// handleHistoryKeys handles keys while the history panel is focused
func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Recall):
		if m.cursor < 0 || m.cursor >= len(m.state.History) {
			return m, nil
		}
		state, err := m.session.Handle(context.Background(), calculator.Recall(m.state.History[m.cursor]))
		m.setState(state)
		m.focus = FocusKeypad
		cmd := m.setError(err)
		return m, cmd

	case msg.String() == "esc":
		m.focus = FocusKeypad
		return m, nil
	}

	// Everything else still reaches the calculator.
	return m.handleKeypadKeys(msg)
}

// handleKeypadKeys forwards calculator keys to the session
func (m Model) handleKeypadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state, ok, err := m.session.HandleKey(context.Background(), msg.String())
	if !ok {
		return m, nil
	}
	m.setState(state)
	cmd := m.setError(err)
	return m, cmd
}
