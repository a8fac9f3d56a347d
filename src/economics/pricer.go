package economics

import (
	"strings"

	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

// ResolveEntryPrice determines the effective entry price for a draft order.
//
// Market orders fill against the opposite side of the book: a market buy
// takes the ask, a market sell takes the bid. Limit-family orders use the
// user-entered price; empty, unparsable or non-positive input falls back to
// the last trade price. The fallback is silent: the form keeps rendering a
// best-effort preview instead of surfacing a validation error.
func ResolveEntryPrice(orderType model.OrderType, side model.Side, priceInput string, quote model.MarketQuote) decimal.Decimal {
	if orderType.IsMarket() {
		if side == model.SideLong {
			return quote.BestAsk
		}
		return quote.BestBid
	}

	price, err := decimal.NewFromString(strings.TrimSpace(priceInput))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return quote.LastPrice
	}
	return price
}
