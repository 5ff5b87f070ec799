package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LongThreshold is the raw operand length above which hosts should switch
// to a compact rendering.
const LongThreshold = 15

// Display is the pair of lines handed to the display sink.
type Display struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Long     bool   `json:"long"`
}

// Formatter renders operands with the locale's grouping and decimal
// separators.
type Formatter struct {
	printer *message.Printer
	decimal string
}

// NewFormatter returns a Formatter for the given BCP 47 tag. An empty tag
// selects English.
func NewFormatter(locale string) (*Formatter, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, err
		}
		tag = parsed
	}
	printer := message.NewPrinter(tag)
	return &Formatter{printer: printer, decimal: decimalSeparator(printer)}, nil
}

// decimalSeparator asks the printer how it renders 1.5 and keeps whatever
// sits between the digits.
func decimalSeparator(p *message.Printer) string {
	sample := p.Sprintf("%.1f", 1.5)
	if !strings.HasPrefix(sample, "1") || !strings.HasSuffix(sample, "5") || len(sample) < 3 {
		return "."
	}
	return sample[1 : len(sample)-1]
}

// Operand formats one operand. The integer part gains grouping separators and
// the decimal point becomes the locale's; the fraction digits are kept
// verbatim, so "1234.50" renders "1,234.50" in English, "1.234,50" in German,
// and "12." renders "12.".
func (f *Formatter) Operand(o Operand) string {
	if o.IsError() {
		return ErrorText
	}
	return f.Text(o.String())
}

// Text formats raw operand text.
func (f *Formatter) Text(text string) string {
	if text == ErrorText {
		return text
	}

	integer, decimal, hasDecimal := strings.Cut(text, ".")
	display := f.integer(integer)
	if hasDecimal {
		return display + f.decimal + decimal
	}
	return display
}

// Display renders the calculator state.
func (f *Formatter) Display(c *Calculator) Display {
	d := Display{
		Current: f.Operand(c.Current()),
		Long:    len(c.Current().String()) > LongThreshold,
	}
	if c.Pending() {
		d.Previous = f.Text(c.Previous()) + " " + c.Operator().Symbol()
	}
	return d
}

func (f *Formatter) integer(text string) string {
	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")
	sign := ""
	if negative {
		sign = "-"
	}

	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return sign + f.printer.Sprintf("%d", n)
	}

	value, err := strconv.ParseFloat(digits, 64)
	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return ""
	case math.IsNaN(value):
		return ""
	case math.IsInf(value, 0):
		return sign + "∞"
	}
	return sign + f.printer.Sprintf("%.0f", math.Trunc(value))
}
