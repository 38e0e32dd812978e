/*
Package wage provides the shared primitives for the wage calculation engines.

PURPOSE:
  Money arithmetic and the rounding contract used by every engine in this
  module. All intermediate calculation happens on decimal.Decimal; rounding
  happens exactly once, when a result record is assembled.

KEY CONCEPTS IN THIS FILE (money.go):
  - RoundMoney:  monetary outputs, 2 decimal places
  - RoundRatio:  unitless ratios, 4 decimal places
  - MustDecimal: package-level constants from exact string literals

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, never float64 arithmetic
  2. Single rounding boundary: intermediates stay unrounded; rounding only
     at result assembly
  3. Constants from strings: MustDecimal("7.25") carries no float artifacts

SEE ALSO:
  - errors.go: validation error types
  - collab/calculator.go, sca/determination.go, davisbacon/determination.go
*/
package wage

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ROUNDING - applied exactly once, at result assembly
// =============================================================================

// RoundMoney rounds a monetary amount to 2 decimal places and returns it as a
// float64 for result records and JSON serialization. Never use the returned
// value in further arithmetic.
func RoundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// RoundRatio rounds a unitless ratio to 4 decimal places.
func RoundRatio(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}

// =============================================================================
// CONSTANT CONSTRUCTION
// =============================================================================

// MustDecimal parses an exact decimal literal. It panics on malformed input
// and is intended for package-level constants only.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("wage: invalid decimal literal " + s)
	}
	return d
}
