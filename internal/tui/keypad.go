package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

type buttonKind int

const (
	buttonDigit buttonKind = iota
	buttonOperator
	buttonAction
)

// keypadButton is one on-screen key. Key is the binding that triggers it.
type keypadButton struct {
	Label    string
	Key      string
	Kind     buttonKind
	Operator calculator.Operator
}

var keypadRows = [][]keypadButton{
	{
		{Label: "C", Key: "c", Kind: buttonAction},
		{Label: "DEL", Key: "backspace", Kind: buttonAction},
		{Label: "T", Key: "t", Kind: buttonAction},
		{Label: calculator.OperatorDivide.Symbol(), Key: "/", Kind: buttonOperator, Operator: calculator.OperatorDivide},
	},
	{
		{Label: "7", Key: "7"},
		{Label: "8", Key: "8"},
		{Label: "9", Key: "9"},
		{Label: calculator.OperatorMultiply.Symbol(), Key: "*", Kind: buttonOperator, Operator: calculator.OperatorMultiply},
	},
	{
		{Label: "4", Key: "4"},
		{Label: "5", Key: "5"},
		{Label: "6", Key: "6"},
		{Label: calculator.OperatorSubtract.Symbol(), Key: "-", Kind: buttonOperator, Operator: calculator.OperatorSubtract},
	},
	{
		{Label: "1", Key: "1"},
		{Label: "2", Key: "2"},
		{Label: "3", Key: "3"},
		{Label: calculator.OperatorAdd.Symbol(), Key: "+", Kind: buttonOperator, Operator: calculator.OperatorAdd},
	},
	{
		{Label: ".", Key: "."},
		{Label: "0", Key: "0"},
		{Label: "X", Key: "x", Kind: buttonAction},
		{Label: "=", Key: "=", Kind: buttonOperator},
	},
}

// renderKeypad draws the button grid, marking the pending operator.
func renderKeypad(styles theme.Styles, pending calculator.Operator) string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, b.style(styles, pending).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b keypadButton) style(styles theme.Styles, pending calculator.Operator) lipgloss.Style {
	switch {
	case b.Kind == buttonOperator && b.Operator != calculator.OperatorNone && b.Operator == pending:
		return styles.KeyActive
	case b.Kind == buttonOperator:
		return styles.KeyOperator
	case b.Kind == buttonAction:
		return styles.KeyAction
	default:
		return styles.Key
	}
}
