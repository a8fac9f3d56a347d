package economics

import (
	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

var one = decimal.NewFromInt(1)

// EstimateLiquidationPrice approximates the price at which an isolated-margin
// position of the given leverage would be liquidated.
//
//	long:  entry * (1 - 1/leverage + maintMarginRatio)
//	short: entry * (1 + 1/leverage - maintMarginRatio)
//
// This is a display estimate only. It ignores funding, existing collateral
// and cross-margin netting, and is not a substitute for a venue's risk
// engine. The second return value is false when baseSize is zero: no
// position, no liquidation price.
func EstimateLiquidationPrice(entryPrice, baseSize decimal.Decimal, leverage int, side model.Side, maintMarginRatio decimal.Decimal) (decimal.Decimal, bool) {
	if baseSize.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}

	if leverage < 1 {
		leverage = 1
	}
	inverseLeverage := one.Div(decimal.NewFromInt(int64(leverage)))

	if side == model.SideLong {
		return entryPrice.Mul(one.Sub(inverseLeverage).Add(maintMarginRatio)), true
	}
	return entryPrice.Mul(one.Add(inverseLeverage).Sub(maintMarginRatio)), true
}
