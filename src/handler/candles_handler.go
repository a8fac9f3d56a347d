package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"orderdesk/src/model"
)

type candleReader interface {
	FetchRecent(ctx context.Context, symbol string, to time.Time, limit int) ([]model.Candle, error)
}

// CandlesHandler returns stored candles for the chart, ascending by time.
// Optional ?limit= caps the number of bars (default 200).
func CandlesHandler(repo candleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		limit := 0
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		candles, err := repo.FetchRecent(r.Context(), symbol, time.Now().UTC(), limit)
		if err != nil {
			logger.WithError(err).WithField("symbol", symbol).Error("failed to fetch candles")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, candles)
	}
}
