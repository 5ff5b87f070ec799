package calculator

import (
	"fmt"
	"strings"
)

// HistorySink receives one formatted entry per successful computation.
type HistorySink interface {
	Append(entry string)
}

// HistorySinkFunc adapts a function to HistorySink.
type HistorySinkFunc func(entry string)

// Append calls f(entry).
func (f HistorySinkFunc) Append(entry string) {
	f(entry)
}

// Calculator is the operand/operator state machine. It is not safe for
// concurrent use; a host UI owns exactly one instance and drives it from its
// event loop.
type Calculator struct {
	current  Operand
	previous string
	operator Operator
	history  HistorySink
}

// New returns a calculator in its initial state. history may be nil.
func New(history HistorySink) *Calculator {
	c := &Calculator{history: history}
	c.Clear()
	return c
}

// Current returns the operand being typed.
func (c *Calculator) Current() Operand {
	return c.current
}

// Previous returns the left-hand operand, or "" when unset.
func (c *Calculator) Previous() string {
	return c.previous
}

// Operator returns the pending operator.
func (c *Calculator) Operator() Operator {
	return c.operator
}

// Pending reports whether an operator is waiting for its second operand.
func (c *Calculator) Pending() bool {
	return c.operator != OperatorNone
}

// Clear resets every field to the initial state.
func (c *Calculator) Clear() {
	c.current = Zero()
	c.previous = ""
	c.operator = OperatorNone
}

// Delete removes the last character of the current operand, flooring at "0".
func (c *Calculator) Delete() {
	if c.current.IsError() {
		c.current = Zero()
		return
	}
	text := c.current.text
	if text != "" {
		text = text[:len(text)-1]
	}
	c.current = Numeric(text)
}

// AppendDigit adds a digit or decimal point to the current operand.
func (c *Calculator) AppendDigit(token rune) {
	if !isDigitToken(token) {
		return
	}
	if c.current.IsError() {
		c.current = Zero()
	}
	if token == '.' && strings.ContainsRune(c.current.text, '.') {
		return
	}
	if c.current.IsZero() && token != '.' {
		c.current = Numeric(string(token))
		return
	}
	c.current = Numeric(c.current.text + string(token))
}

// ChooseOperator arms op. A pending operation is computed first, so
// "5 + 3 +" evaluates 5+3 before the next operand is typed.
func (c *Calculator) ChooseOperator(op Operator) {
	if op == OperatorNone {
		return
	}
	if (c.current.IsZero() || c.current.IsError()) && c.previous == "" {
		return
	}

	if c.previous != "" {
		c.Compute()
		if c.current.IsError() {
			return
		}
	}

	c.operator = op
	c.previous = c.current.String()
	c.current = Zero()
}

// Compute applies the pending operator. It does nothing when no operator is
// set or when either operand does not parse. Division by zero leaves the
// error operand and records no history.
func (c *Calculator) Compute() {
	left, ok := Numeric(c.previous).Float()
	if !ok || c.previous == "" {
		return
	}
	right, ok := c.current.Float()
	if !ok || c.operator == OperatorNone {
		return
	}

	value, ok := c.operator.apply(left, right)
	if !ok {
		c.current = ErrorOperand()
	} else {
		result := FormatNumber(value)
		if c.history != nil {
			c.history.Append(fmt.Sprintf("%s %s %s = %s", c.previous, c.operator.Symbol(), c.current.text, result))
		}
		c.current = Numeric(result)
	}

	c.operator = OperatorNone
	c.previous = ""
}

// Recall seeds a fresh calculation with the result part of a history entry
// ("5 + 3 = 8" seeds "8"). It returns false when entry has no result part.
func (c *Calculator) Recall(entry string) bool {
	idx := strings.Index(entry, "= ")
	if idx < 0 {
		return false
	}
	c.Clear()
	c.current = Numeric(entry[idx+2:])
	return true
}

// Apply routes a core input to the matching operation. It returns false for
// inputs the calculator does not own (clear-history, toggle-theme, recall).
func (c *Calculator) Apply(in Input) bool {
	switch in.Kind {
	case InputDigit:
		c.AppendDigit(in.Token)
	case InputOperator:
		c.ChooseOperator(in.Operator)
	case InputCompute:
		c.Compute()
	case InputDelete:
		c.Delete()
	case InputClear:
		c.Clear()
	default:
		return false
	}
	return true
}

func isDigitToken(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}
