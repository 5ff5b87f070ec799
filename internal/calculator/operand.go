package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ErrorText is the display sentinel for a failed computation.
const ErrorText = "Error"

// Operand is either a possibly partial decimal being typed ("12.") or the
// error state left behind by a division by zero.
type Operand struct {
	text  string
	isErr bool
}

// Zero returns the fresh "0" operand.
func Zero() Operand {
	return Operand{text: "0"}
}

// Numeric wraps decimal text as an operand. Empty text normalizes to "0".
func Numeric(text string) Operand {
	if text == "" {
		return Zero()
	}
	return Operand{text: text}
}

// ErrorOperand returns the error state operand.
func ErrorOperand() Operand {
	return Operand{isErr: true}
}

// IsError reports whether the operand holds the error state.
func (o Operand) IsError() bool {
	return o.isErr
}

// IsZero reports whether the operand is exactly the untouched "0".
func (o Operand) IsZero() bool {
	return !o.isErr && o.text == "0"
}

// String returns the raw operand text, or "Error" for the error state.
func (o Operand) String() string {
	if o.isErr {
		return ErrorText
	}
	return o.text
}

// Float parses the operand leniently: a trailing decimal point is accepted
// ("12." is 12). It returns false for the error state, unparsable text and NaN.
func (o Operand) Float() (float64, bool) {
	if o.isErr {
		return 0, false
	}
	text := strings.TrimSuffix(o.text, ".")
	if text == "" || text == "-" {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// FormatNumber renders a float64 the way a result is stored in the current
// operand: shortest round-trip digits, exponent form outside [1e-6, 1e21).
func FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	abs := math.Abs(value)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return trimExponent(strconv.FormatFloat(value, 'e', -1, 64))
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// trimExponent drops the zero padding Go puts on exponents ("1e-07" -> "1e-7").
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1], strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
