package economics

import (
	"strings"

	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

var oneHundred = decimal.NewFromInt(100)

// NormalizeSize converts raw size input into a canonical base-asset quantity.
//
// Unparsable or negative input normalizes to zero, meaning "no order yet"
// rather than an error. Quote-denominated input (USD) is divided by the entry
// price; a non-positive entry price also yields zero since no meaningful
// conversion exists.
func NormalizeSize(sizeInput string, unit model.SizeUnit, entryPrice decimal.Decimal) decimal.Decimal {
	size, err := decimal.NewFromString(strings.TrimSpace(sizeInput))
	if err != nil || size.IsNegative() {
		return decimal.Zero
	}

	if unit == model.SizeUnitQuote {
		if entryPrice.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
		return size.Div(entryPrice)
	}
	return size
}

// SizeFromPercentOfMax returns percent/100 of the maximum tradeable size.
// Backs the 25/50/75/100% quick-select buttons; maxBaseSize comes from the
// caller (typically available margin divided by entry price).
func SizeFromPercentOfMax(percent, maxBaseSize decimal.Decimal) decimal.Decimal {
	if percent.LessThanOrEqual(decimal.Zero) || maxBaseSize.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if percent.GreaterThan(oneHundred) {
		percent = oneHundred
	}
	return maxBaseSize.Mul(percent).Div(oneHundred)
}
