package economics

import (
	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

// PreviewDraft runs the full per-keystroke pipeline for one draft against
// one quote: resolve price, normalize size, compute economics, estimate
// liquidation. Stateless; every invocation recomputes from scratch.
func PreviewDraft(draft model.OrderDraft, quote model.MarketQuote, feeRate, maintMarginRatio decimal.Decimal) model.OrderEconomics {
	entryPrice := ResolveEntryPrice(draft.Type, draft.Side, draft.PriceInput, quote)
	baseSize := NormalizeSize(draft.SizeInput, draft.SizeUnit, entryPrice)
	eco := ComputeEconomics(entryPrice, baseSize, draft.Leverage, feeRate)

	result := model.OrderEconomics{
		EntryPrice:     entryPrice,
		BaseSize:       baseSize,
		NotionalValue:  eco.NotionalValue,
		MarginRequired: eco.MarginRequired,
		Fee:            eco.Fee,
	}

	if liq, ok := EstimateLiquidationPrice(entryPrice, baseSize, draft.Leverage, draft.Side, maintMarginRatio); ok {
		result.LiquidationPrice = &liq
	}
	return result
}
