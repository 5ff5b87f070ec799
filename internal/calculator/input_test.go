package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Input
	}{
		{key: "0", want: Digit('0')},
		{key: "9", want: Digit('9')},
		{key: ".", want: Digit('.')},
		{key: "+", want: Op(OperatorAdd)},
		{key: "-", want: Op(OperatorSubtract)},
		{key: "*", want: Op(OperatorMultiply)},
		{key: "/", want: Op(OperatorDivide)},
		{key: "=", want: Input{Kind: InputCompute}},
		{key: "enter", want: Input{Kind: InputCompute}},
		{key: "backspace", want: Input{Kind: InputDelete}},
		{key: "esc", want: Input{Kind: InputClear}},
		{key: "c", want: Input{Kind: InputClear}},
		{key: "x", want: Input{Kind: InputClearHistory}},
		{key: "t", want: Input{Kind: InputToggleTheme}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ParseKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_Unknown(t *testing.T) {
	for _, key := range []string{"", "a", " ", "ctrl+a", "12"} {
		_, ok := ParseKey(key)
		assert.False(t, ok, key)
	}
}

func TestOperatorSymbols(t *testing.T) {
	assert.Equal(t, "+", OperatorAdd.Symbol())
	assert.Equal(t, "−", OperatorSubtract.Symbol())
	assert.Equal(t, "×", OperatorMultiply.Symbol())
	assert.Equal(t, "÷", OperatorDivide.Symbol())
	assert.Equal(t, "", OperatorNone.Symbol())
	assert.Equal(t, "divide", OperatorDivide.String())
}

func TestInputKindString(t *testing.T) {
	assert.Equal(t, "clear_history", InputClearHistory.String())
	assert.Equal(t, "digit", InputDigit.String())
}
