package calculator

// Operator is the pending binary operation.
type Operator int

const (
	OperatorNone Operator = iota
	OperatorAdd
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

// Symbol returns the display glyph used on the secondary line and in history.
func (o Operator) Symbol() string {
	switch o {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "−"
	case OperatorMultiply:
		return "×"
	case OperatorDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case OperatorAdd:
		return "add"
	case OperatorSubtract:
		return "subtract"
	case OperatorMultiply:
		return "multiply"
	case OperatorDivide:
		return "divide"
	default:
		return "none"
	}
}

// OperatorForKey maps a keyboard operator key to its Operator.
func OperatorForKey(key string) (Operator, bool) {
	switch key {
	case "+":
		return OperatorAdd, true
	case "-":
		return OperatorSubtract, true
	case "*":
		return OperatorMultiply, true
	case "/":
		return OperatorDivide, true
	default:
		return OperatorNone, false
	}
}

// apply evaluates the operation. ok is false when the divisor is zero.
func (o Operator) apply(left, right float64) (result float64, ok bool) {
	switch o {
	case OperatorAdd:
		return left + right, true
	case OperatorSubtract:
		return left - right, true
	case OperatorMultiply:
		return left * right, true
	case OperatorDivide:
		if right == 0 {
			return 0, false
		}
		return left / right, true
	default:
		return 0, false
	}
}
