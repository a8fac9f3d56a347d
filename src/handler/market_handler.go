package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"orderdesk/src/model"
)

type quoteSource interface {
	Quote(ctx context.Context, symbol string) (model.MarketQuote, error)
}

type bookSource interface {
	OrderBook(symbol string, levels int) model.OrderBook
}

type tradeSource interface {
	Trades(symbol string, n int) []model.TradePrint
}

// QuoteHandler returns the current top-of-book quote for a symbol.
func QuoteHandler(source quoteSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		quote, err := source.Quote(r.Context(), symbol)
		if err != nil {
			logger.WithError(err).WithField("symbol", symbol).Error("failed to fetch quote")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, quote)
	}
}

// OrderBookHandler returns a depth snapshot. Optional ?levels= caps the
// number of price levels per side.
func OrderBookHandler(source bookSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		levels := 0
		if levelsParam := r.URL.Query().Get("levels"); levelsParam != "" {
			parsed, err := strconv.Atoi(levelsParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid levels", http.StatusBadRequest)
				return
			}
			levels = parsed
		}

		writeJSON(w, source.OrderBook(symbol, levels))
	}
}

// TradesHandler returns recent trade prints, most recent first.
func TradesHandler(source tradeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		count := 0
		if countParam := r.URL.Query().Get("count"); countParam != "" {
			parsed, err := strconv.Atoi(countParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid count", http.StatusBadRequest)
				return
			}
			count = parsed
		}

		writeJSON(w, source.Trades(symbol, count))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
