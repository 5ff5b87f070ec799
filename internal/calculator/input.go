package calculator

// InputKind identifies an event delivered by a host UI.
type InputKind int

const (
	InputDigit InputKind = iota
	InputOperator
	InputCompute
	InputClear
	InputDelete
	InputClearHistory
	InputToggleTheme
	InputRecall
)

// String returns the event name used in logs.
func (k InputKind) String() string {
	switch k {
	case InputDigit:
		return "digit"
	case InputOperator:
		return "operator"
	case InputCompute:
		return "compute"
	case InputClear:
		return "clear"
	case InputDelete:
		return "delete"
	case InputClearHistory:
		return "clear_history"
	case InputToggleTheme:
		return "toggle_theme"
	case InputRecall:
		return "recall"
	default:
		return "unknown"
	}
}

// Input is one button press or key press.
type Input struct {
	Kind     InputKind
	Token    rune     // InputDigit
	Operator Operator // InputOperator
	Entry    string   // InputRecall
}

// Digit builds a digit or decimal point input.
func Digit(token rune) Input { return Input{Kind: InputDigit, Token: token} }

// Op builds an operator input.
func Op(op Operator) Input { return Input{Kind: InputOperator, Operator: op} }

// Recall builds an input that re-seeds the calculator from a history entry.
func Recall(entry string) Input { return Input{Kind: InputRecall, Entry: entry} }

// ParseKey maps a key name (as reported by the terminal layer, e.g. "7",
// "+", "enter", "backspace") to an input.
func ParseKey(key string) (Input, bool) {
	if len(key) == 1 && isDigitToken(rune(key[0])) {
		return Digit(rune(key[0])), true
	}
	if op, ok := OperatorForKey(key); ok {
		return Op(op), true
	}

	switch key {
	case "=", "enter":
		return Input{Kind: InputCompute}, true
	case "backspace", "delete":
		return Input{Kind: InputDelete}, true
	case "esc", "c", "C":
		return Input{Kind: InputClear}, true
	case "x", "X":
		return Input{Kind: InputClearHistory}, true
	case "t", "T":
		return Input{Kind: InputToggleTheme}, true
	}
	return Input{}, false
}
