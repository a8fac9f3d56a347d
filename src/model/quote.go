package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketQuote is a point-in-time snapshot of the top of book for one symbol.
// Callers are expected to supply a fresh quote per calculation; the usual
// invariant BestBid <= LastPrice <= BestAsk is assumed, not enforced here.
type MarketQuote struct {
	Symbol    string          `json:"symbol"`
	LastPrice decimal.Decimal `json:"last_price"`
	BestBid   decimal.Decimal `json:"best_bid"`
	BestAsk   decimal.Decimal `json:"best_ask"`
	Timestamp time.Time       `json:"timestamp"`
}
