package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders money and numbers for printable views using the
// configured locale. The default en-IN gives the lakh/crore digit
// grouping the paper documents use.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// INR formats v as rupees with two decimal places.
func (f *Formatter) INR(v float64) string {
	return f.printer.Sprintf("₹%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Quantity formats v with locale grouping and no forced decimals.
func (f *Formatter) Quantity(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
