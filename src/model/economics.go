package model

import "github.com/shopspring/decimal"

// OrderEconomics is the derived view-model recomputed on every input change.
// LiquidationPrice is nil when BaseSize is zero (no position, no liquidation).
type OrderEconomics struct {
	EntryPrice       decimal.Decimal  `json:"entry_price"`
	BaseSize         decimal.Decimal  `json:"base_size"`
	NotionalValue    decimal.Decimal  `json:"notional_value"`
	MarginRequired   decimal.Decimal  `json:"margin_required"`
	Fee              decimal.Decimal  `json:"fee"`
	LiquidationPrice *decimal.Decimal `json:"liquidation_price,omitempty"`
}
