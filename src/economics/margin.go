package economics

import (
	"github.com/shopspring/decimal"
)

// Economics bundles the notional, margin and fee figures shown next to the
// trade entry form.
type Economics struct {
	NotionalValue  decimal.Decimal
	MarginRequired decimal.Decimal
	Fee            decimal.Decimal
}

// ComputeEconomics derives notional value, required margin and taker fee for
// a position of baseSize at entryPrice.
//
//   - notional = entryPrice * baseSize
//   - margin   = notional / leverage (leverage <= 0 is coerced to 1)
//   - fee      = notional * feeRate
//
// A zero base size yields all-zero economics.
func ComputeEconomics(entryPrice, baseSize decimal.Decimal, leverage int, feeRate decimal.Decimal) Economics {
	if baseSize.LessThanOrEqual(decimal.Zero) {
		return Economics{
			NotionalValue:  decimal.Zero,
			MarginRequired: decimal.Zero,
			Fee:            decimal.Zero,
		}
	}

	if leverage < 1 {
		leverage = 1
	}

	notional := entryPrice.Mul(baseSize)
	return Economics{
		NotionalValue:  notional,
		MarginRequired: notional.Div(decimal.NewFromInt(int64(leverage))),
		Fee:            notional.Mul(feeRate),
	}
}
