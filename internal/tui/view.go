package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
)

const emptyHistoryText = "No calculations yet."

// View renders the current model state
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.showError {
		sections = append(sections, m.styles.ErrorBanner.Render("⚠ "+m.errorMsg+"  (esc to dismiss)"))
	}

	sections = append(sections, m.renderDisplay())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		renderKeypad(m.styles, m.pendingOperator()),
		"  ",
		m.renderHistory(),
	))
	sections = append(sections, m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	return m.styles.Title.Render(fmt.Sprintf("calcterm • %s", m.state.Theme))
}

func (m Model) pendingOperator() calculator.Operator {
	if m.session == nil {
		return calculator.OperatorNone
	}
	return m.session.Calculator().Operator()
}

func (m Model) renderDisplay() string {
	previous := m.state.Display.Previous
	if previous == "" {
		// keep the display height stable
		previous = " "
	}

	currentStyle := m.styles.Current
	if m.state.Display.Long {
		currentStyle = m.styles.CurrentCompact
	}

	return m.styles.Display.Render(lipgloss.JoinVertical(lipgloss.Right,
		m.styles.Previous.Render(previous),
		currentStyle.Render(m.state.Display.Current),
	))
}

func (m Model) renderHistory() string {
	box := m.styles.History
	if m.focus == FocusHistory {
		box = m.styles.HistoryFocused
	}

	lines := []string{m.styles.HistoryTitle.Render("History")}
	if len(m.state.History) == 0 {
		lines = append(lines, m.styles.Empty.Render(emptyHistoryText))
		return box.Render(strings.Join(lines, "\n"))
	}

	for i, entry := range m.state.History {
		if m.focus == FocusHistory && i == m.cursor {
			lines = append(lines, m.styles.HistorySel.Render(entry))
			continue
		}
		lines = append(lines, m.styles.HistoryItem.Render(entry))
	}
	return box.Render(strings.Join(lines, "\n"))
}
