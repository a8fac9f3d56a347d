package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"orderdesk/src/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type mockQuoteSource struct {
	quote       model.MarketQuote
	err         error
	symbol      string
	calledCount int
}

func (m *mockQuoteSource) Quote(_ context.Context, symbol string) (model.MarketQuote, error) {
	m.calledCount++
	m.symbol = symbol
	return m.quote, m.err
}

type mockBookSource struct {
	book   model.OrderBook
	levels int
}

func (m *mockBookSource) OrderBook(symbol string, levels int) model.OrderBook {
	m.levels = levels
	return m.book
}

type mockTradeSource struct {
	prints []model.TradePrint
	count  int
}

func (m *mockTradeSource) Trades(symbol string, n int) []model.TradePrint {
	m.count = n
	return m.prints
}

func testQuote() model.MarketQuote {
	return model.MarketQuote{
		Symbol:    "ETH-USD",
		LastPrice: d("3325.60"),
		BestBid:   d("3325.40"),
		BestAsk:   d("3325.80"),
		Timestamp: time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func marketRouter(quotes *mockQuoteSource, books *mockBookSource, trades *mockTradeSource) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/quote/{symbol}", QuoteHandler(quotes))
	r.Get("/api/orderbook/{symbol}", OrderBookHandler(books))
	r.Get("/api/trades/{symbol}", TradesHandler(trades))
	return r
}

func TestQuoteHandler_Success(t *testing.T) {
	mockQuotes := &mockQuoteSource{quote: testQuote()}
	router := marketRouter(mockQuotes, &mockBookSource{}, &mockTradeSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/quote/ETH-USD", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mockQuotes.symbol != "ETH-USD" {
		t.Fatalf("expected symbol ETH-USD, got %s", mockQuotes.symbol)
	}

	var got model.MarketQuote
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !got.LastPrice.Equal(d("3325.60")) {
		t.Fatalf("unexpected last price: %s", got.LastPrice)
	}
}

func TestQuoteHandler_SourceError(t *testing.T) {
	mockQuotes := &mockQuoteSource{err: assert.AnError}
	router := marketRouter(mockQuotes, &mockBookSource{}, &mockTradeSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/quote/ETH-USD", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if mockQuotes.calledCount != 1 {
		t.Fatalf("expected source to be called once, got %d", mockQuotes.calledCount)
	}
}

func TestOrderBookHandler(t *testing.T) {
	mockBooks := &mockBookSource{book: model.OrderBook{
		Symbol: "ETH-USD",
		Bids:   []model.BookLevel{{Price: d("3325.40"), Size: d("1.2")}},
		Asks:   []model.BookLevel{{Price: d("3325.80"), Size: d("0.8")}},
	}}
	router := marketRouter(&mockQuoteSource{}, mockBooks, &mockTradeSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/orderbook/ETH-USD?levels=5", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mockBooks.levels != 5 {
		t.Fatalf("expected levels 5, got %d", mockBooks.levels)
	}
}

func TestOrderBookHandler_InvalidLevels(t *testing.T) {
	router := marketRouter(&mockQuoteSource{}, &mockBookSource{}, &mockTradeSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/orderbook/ETH-USD?levels=abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestTradesHandler(t *testing.T) {
	mockTrades := &mockTradeSource{prints: []model.TradePrint{
		{Symbol: "ETH-USD", Side: model.SideLong, Price: d("3325.60"), Size: d("0.5")},
	}}
	router := marketRouter(&mockQuoteSource{}, &mockBookSource{}, mockTrades)

	req := httptest.NewRequest(http.MethodGet, "/api/trades/ETH-USD?count=10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mockTrades.count != 10 {
		t.Fatalf("expected count 10, got %d", mockTrades.count)
	}

	var got []model.TradePrint
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 trade print, got %d", len(got))
	}
}
