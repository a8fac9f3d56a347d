package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

func (s Side) Valid() bool {
	return s == SideLong || s == SideShort
}

type OrderType string

const (
	OrderTypeMarket     OrderType = "market"
	OrderTypeLimit      OrderType = "limit"
	OrderTypeStopLimit  OrderType = "stop_limit"
	OrderTypeStopMarket OrderType = "stop_market"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopLimit, OrderTypeStopMarket:
		return true
	}
	return false
}

// IsMarket reports whether the order fills immediately against the book,
// i.e. carries no limit price of its own.
func (t OrderType) IsMarket() bool {
	return t == OrderTypeMarket
}

type SizeUnit string

const (
	SizeUnitBase  SizeUnit = "base"
	SizeUnitQuote SizeUnit = "quote"
)

func (u SizeUnit) Valid() bool {
	return u == SizeUnitBase || u == SizeUnitQuote
}

type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

func (t TimeInForce) Valid() bool {
	return t == TimeInForceGTC || t == TimeInForceIOC || t == TimeInForceFOK
}

const (
	MinLeverage = 1
	MaxLeverage = 100
)

// ClampLeverage coerces degenerate leverage values into the allowed range.
func ClampLeverage(leverage int) int {
	if leverage < MinLeverage {
		return MinLeverage
	}
	if leverage > MaxLeverage {
		return MaxLeverage
	}
	return leverage
}

// OrderDraft is the transient state of the trade entry form. Price and size
// arrive as raw user text and may be empty or invalid; downstream resolution
// is fail-soft and never rejects a draft.
type OrderDraft struct {
	Symbol       string           `json:"symbol"`
	Side         Side             `json:"side"`
	Type         OrderType        `json:"type"`
	PriceInput   string           `json:"price_input"`
	TriggerPrice *decimal.Decimal `json:"trigger_price,omitempty"`
	SizeInput    string           `json:"size_input"`
	SizeUnit     SizeUnit         `json:"size_unit"`
	Leverage     int              `json:"leverage"`
	ReduceOnly   bool             `json:"reduce_only"`
	PostOnly     bool             `json:"post_only"`
	TimeInForce  TimeInForce      `json:"time_in_force"`
	TpSlEnabled  bool             `json:"tp_sl_enabled"`
	TakeProfit   *decimal.Decimal `json:"take_profit,omitempty"`
	StopLoss     *decimal.Decimal `json:"stop_loss,omitempty"`
}

// OrderIntent is the immutable value assembled at submit time. Price is nil
// for market orders. Ownership passes to the submission recorder; nothing in
// this module holds a reference afterwards.
type OrderIntent struct {
	ClientOrderID string           `json:"client_order_id"`
	Symbol        string           `json:"symbol"`
	Side          Side             `json:"side"`
	Type          OrderType        `json:"type"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	TriggerPrice  *decimal.Decimal `json:"trigger_price,omitempty"`
	Size          decimal.Decimal  `json:"size"`
	Leverage      int              `json:"leverage"`
	ReduceOnly    bool             `json:"reduce_only"`
	PostOnly      bool             `json:"post_only"`
	TimeInForce   TimeInForce      `json:"time_in_force"`
	TakeProfit    *decimal.Decimal `json:"take_profit,omitempty"`
	StopLoss      *decimal.Decimal `json:"stop_loss,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
