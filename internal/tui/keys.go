package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Digits       key.Binding
	Operators    key.Binding
	Compute      key.Binding
	Delete       key.Binding
	Clear        key.Binding
	ClearHistory key.Binding
	ToggleTheme  key.Binding
	Focus        key.Binding
	Up           key.Binding
	Down         key.Binding
	Recall       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "enter number"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+ - * /", "operator"),
		),
		Compute: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("= ↵", "compute"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c", "C"),
			key.WithHelp("esc/c", "clear"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "clear history"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "toggle theme"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Recall: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "reuse result"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compute, k.Clear, k.Focus, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Compute, k.Delete, k.Clear},
		{k.Focus, k.Up, k.Down, k.Recall},
		{k.ClearHistory, k.ToggleTheme, k.Help, k.Quit},
	}
}
