package economics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

// AssembleOrder packages a draft plus the already-resolved price and size
// into the immutable intent handed to the submission recorder.
//
// Market orders carry no price: they fill at whatever the book offers, so
// the resolved preview price is dropped. Stop-family orders
// keep their trigger price. Take-profit and stop-loss are copied only while
// the form's TP/SL toggle is on; a filled-in but disabled bracket is
// ignored. No further validation happens here, the resolver and normalizer
// already did their fail-soft work.
func AssembleOrder(draft model.OrderDraft, resolvedPrice, normalizedSize decimal.Decimal) model.OrderIntent {
	intent := model.OrderIntent{
		ClientOrderID: uuid.NewString(),
		Symbol:        draft.Symbol,
		Side:          draft.Side,
		Type:          draft.Type,
		Size:          normalizedSize,
		Leverage:      model.ClampLeverage(draft.Leverage),
		ReduceOnly:    draft.ReduceOnly,
		PostOnly:      draft.PostOnly,
		TimeInForce:   draft.TimeInForce,
		CreatedAt:     time.Now().UTC(),
	}

	if !draft.Type.IsMarket() {
		price := resolvedPrice
		intent.Price = &price
	}

	if draft.Type == model.OrderTypeStopLimit || draft.Type == model.OrderTypeStopMarket {
		intent.TriggerPrice = draft.TriggerPrice
	}

	if draft.TpSlEnabled {
		intent.TakeProfit = draft.TakeProfit
		intent.StopLoss = draft.StopLoss
	}

	return intent
}
