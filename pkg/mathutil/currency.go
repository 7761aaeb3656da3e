// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/nomina/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Spreadsheet exports store amounts this way.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsNegative checks if a value is negative beyond float noise (less than
// negative tolerance). Roster validation uses it for hours and days.
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
