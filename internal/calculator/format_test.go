package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnglishFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter("en")
	require.NoError(t, err)
	return f
}

func TestFormatter_Text(t *testing.T) {
	f := newEnglishFormatter(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0"},
		{in: "999", want: "999"},
		{in: "1234", want: "1,234"},
		{in: "1234567", want: "1,234,567"},
		{in: "-1234", want: "-1,234"},
		{in: "1234.5678", want: "1,234.5678"},
		{in: "1234.50", want: "1,234.50"},
		{in: "12.", want: "12."},
		{in: ".5", want: ".5"},
		{in: "-", want: ""},
		{in: "", want: ""},
		{in: "Error", want: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Text(tt.in))
		})
	}
}

func TestFormatter_OperandError(t *testing.T) {
	f := newEnglishFormatter(t)
	assert.Equal(t, "Error", f.Operand(ErrorOperand()))
}

func TestFormatter_GermanSeparators(t *testing.T) {
	f, err := NewFormatter("de")
	require.NoError(t, err)

	assert.Equal(t, "1.234.567", f.Text("1234567"))
	assert.Equal(t, "1.234,5", f.Text("1234.5"))
	assert.Equal(t, "-0,25", f.Text("-0.25"))
	assert.Equal(t, "12,", f.Text("12."))
}

func TestFormatter_DecimalSeparator(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en", want: "."},
		{locale: "", want: "."},
		{locale: "de", want: ","},
		{locale: "fr", want: ","},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f, err := NewFormatter(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.decimal)
		})
	}
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("not a locale!")
	require.Error(t, err)
}

func TestFormatter_Display(t *testing.T) {
	f := newEnglishFormatter(t)
	c := New(nil)
	typeKeys(c, "1234+5")

	d := f.Display(c)

	assert.Equal(t, "5", d.Current)
	assert.Equal(t, "1,234 +", d.Previous)
	assert.False(t, d.Long)
}

func TestFormatter_DisplayIdleHasNoSecondaryLine(t *testing.T) {
	f := newEnglishFormatter(t)
	c := New(nil)
	typeKeys(c, "2*3=")

	d := f.Display(c)

	assert.Equal(t, "6", d.Current)
	assert.Equal(t, "", d.Previous)
}

func TestFormatter_DisplayLongOperand(t *testing.T) {
	f := newEnglishFormatter(t)
	c := New(nil)
	typeKeys(c, "1234567890123456")

	d := f.Display(c)

	assert.True(t, d.Long)
	assert.Equal(t, "1,234,567,890,123,456", d.Current)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 8, want: "8"},
		{in: -3, want: "-3"},
		{in: 3.5, want: "3.5"},
		{in: 1e21, want: "1e+21"},
		{in: 1e-7, want: "1e-7"},
		{in: 123456789012, want: "123456789012"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

func TestFormatNumber_RuntimeFloatSum(t *testing.T) {
	// constant arithmetic would fold to exactly 0.3
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", FormatNumber(a+b))
}

func TestOperandFloat(t *testing.T) {
	v, ok := Numeric("12.").Float()
	require.True(t, ok)
	assert.Equal(t, 12.0, v)

	_, ok = ErrorOperand().Float()
	assert.False(t, ok)

	_, ok = Numeric("-").Float()
	assert.False(t, ok)

	_, ok = Numeric("NaN").Float()
	assert.False(t, ok)

	v, ok = Numeric("Infinity").Float()
	require.True(t, ok)
	assert.Greater(t, v, 1e308)
}
