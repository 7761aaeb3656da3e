// Package format renders peso amounts for display.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Pesos rounds to whole pesos and adds a symbol and thousands separators
// (e.g., "-$1,750,905"). Rounding is half away from zero.
func Pesos(amount float64) string {
	whole := decimal.NewFromFloat(amount).Round(0)
	if whole.IsNegative() {
		return "-$" + printer.Sprintf("%d", whole.Neg().IntPart())
	}
	return "$" + printer.Sprintf("%d", whole.IntPart())
}

// NumericPesos is Pesos without the currency symbol (e.g., "1,750,905").
func NumericPesos(amount float64) string {
	return printer.Sprintf("%d", decimal.NewFromFloat(amount).Round(0).IntPart())
}

// Fixed renders an unrounded engine amount with two decimals and no
// separators, suitable for machine-readable exports.
func Fixed(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// Percent renders a fractional rate as a percentage (0.085 -> "8.5%").
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String() + "%"
}
