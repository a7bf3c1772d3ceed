package events

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders minor unit amounts for humans.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	scale   int32
}

// NewFormatter returns a Formatter for an ISO 4217 currency code and a
// BCP 47 locale.
func NewFormatter(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)

	return Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		scale:   int32(scale),
	}, nil
}

// Major converts an amount in minor units to major units.
func (f Formatter) Major(minor int64) decimal.Decimal {
	return decimal.New(minor, -f.scale)
}

// Amount formats an amount in minor units, e.g. 300 as "$ 3.00". The
// number is rendered from the decimal, amounts beyond float64 precision
// stay exact.
func (f Formatter) Amount(minor int64) string {
	return f.printer.Sprintf("%v %s", currency.Symbol(f.unit), f.Major(minor).StringFixed(f.scale))
}

// Summary is a one line description of an event.
func (f Formatter) Summary(e Event) string {
	if e.Description == "" {
		return fmt.Sprintf("%s %s", e.Type, f.Amount(e.Amount))
	}
	return fmt.Sprintf("%s: %s", e.Description, f.Amount(e.Amount))
}
