package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

func TestViewRendersDisplayAndEmptyHistory(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "1234")

	view := m.View()

	assert.Contains(t, view, "calcterm")
	assert.Contains(t, view, "1,234")
	assert.Contains(t, view, emptyHistoryText)
}

func TestViewShowsPendingOperatorAndHistory(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeString(t, m, "5+3=*")

	view := m.View()

	assert.Contains(t, view, "8 ×")
	assert.Contains(t, view, "5 + 3 = 8")
	assert.NotContains(t, view, emptyHistoryText)
}

func TestViewShowsErrorBanner(t *testing.T) {
	m := newTestModel(t, nil)
	m.showError = true
	m.errorMsg = "storage error"

	assert.Contains(t, m.View(), "storage error")
}

func TestViewRendersKeypad(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()

	for _, label := range []string{"DEL", "÷", "×", "−", "+", "="} {
		assert.Contains(t, view, label)
	}
}

func TestKeypadButtonsParseAsInputs(t *testing.T) {
	for _, row := range keypadRows {
		for _, b := range row {
			in, ok := calculator.ParseKey(b.Key)
			assert.True(t, ok, b.Label)
			if b.Operator != calculator.OperatorNone {
				assert.Equal(t, b.Operator, in.Operator, b.Label)
			}
		}
	}
}

func TestKeypadHighlightsPendingOperator(t *testing.T) {
	styles := theme.NewStyles(theme.Light)
	minus := keypadButton{Label: "−", Key: "-", Kind: buttonOperator, Operator: calculator.OperatorSubtract}
	equals := keypadButton{Label: "=", Key: "=", Kind: buttonOperator}

	assert.Equal(t, styles.KeyActive.GetBorderStyle(), minus.style(styles, calculator.OperatorSubtract).GetBorderStyle())
	assert.Equal(t, styles.KeyOperator.GetBorderStyle(), minus.style(styles, calculator.OperatorAdd).GetBorderStyle())
	assert.Equal(t, styles.KeyOperator.GetBorderStyle(), equals.style(styles, calculator.OperatorNone).GetBorderStyle())
}
