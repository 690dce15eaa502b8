// Package money formats amounts the way Indonesian users write them.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders d with id-ID grouping, e.g. 1250000.5 -> "1.250.000,5".
func Format(d decimal.Decimal) string {
	p := message.NewPrinter(language.Indonesian)
	return p.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// Rupiah is Format with the "Rp " prefix.
func Rupiah(d decimal.Decimal) string {
	return "Rp " + Format(d)
}
