package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"orderdesk/src/economics"
	"orderdesk/src/model"
	"orderdesk/src/submit"
)

// EconomicsParams carries the venue constants the calculations need. The
// economics package itself takes them as plain arguments; this is the one
// place they get injected from configuration.
type EconomicsParams struct {
	FeeRate          decimal.Decimal
	MaintMarginRatio decimal.Decimal
}

// decodeDraft parses and sanity-checks the request body. Enum fields must be
// valid when present; price and size stay raw text, resolution downstream is
// fail-soft and never rejects them.
func decodeDraft(w http.ResponseWriter, r *http.Request) (model.OrderDraft, bool) {
	var draft model.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return draft, false
	}

	if draft.Symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return draft, false
	}
	if !draft.Side.Valid() {
		http.Error(w, "invalid side", http.StatusBadRequest)
		return draft, false
	}
	if !draft.Type.Valid() {
		http.Error(w, "invalid order type", http.StatusBadRequest)
		return draft, false
	}

	if draft.SizeUnit == "" {
		draft.SizeUnit = model.SizeUnitBase
	} else if !draft.SizeUnit.Valid() {
		http.Error(w, "invalid size unit", http.StatusBadRequest)
		return draft, false
	}

	if draft.TimeInForce == "" {
		draft.TimeInForce = model.TimeInForceGTC
	} else if !draft.TimeInForce.Valid() {
		http.Error(w, "invalid time in force", http.StatusBadRequest)
		return draft, false
	}

	draft.Leverage = model.ClampLeverage(draft.Leverage)
	return draft, true
}

// PreviewOrderHandler recomputes order economics for a draft against the
// current quote. Stateless: the UI calls this on every input change.
func PreviewOrderHandler(quotes quoteSource, params EconomicsParams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, ok := decodeDraft(w, r)
		if !ok {
			return
		}

		quote, err := quotes.Quote(r.Context(), draft.Symbol)
		if err != nil {
			logger.WithError(err).WithField("symbol", draft.Symbol).Error("failed to fetch quote for preview")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, economics.PreviewDraft(draft, quote, params.FeeRate, params.MaintMarginRatio))
	}
}

// SubmitOrderHandler resolves the draft, assembles the immutable intent and
// hands it to the recorder. The intent is echoed back to the caller; nothing
// is transmitted to any execution venue.
func SubmitOrderHandler(quotes quoteSource, recorder submit.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, ok := decodeDraft(w, r)
		if !ok {
			return
		}

		quote, err := quotes.Quote(r.Context(), draft.Symbol)
		if err != nil {
			logger.WithError(err).WithField("symbol", draft.Symbol).Error("failed to fetch quote for submit")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		entryPrice := economics.ResolveEntryPrice(draft.Type, draft.Side, draft.PriceInput, quote)
		baseSize := economics.NormalizeSize(draft.SizeInput, draft.SizeUnit, entryPrice)
		intent := economics.AssembleOrder(draft, entryPrice, baseSize)

		if err := recorder.Record(r.Context(), intent); err != nil {
			logger.WithError(err).WithField("client_order_id", intent.ClientOrderID).Error("failed to record order intent")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(intent); err != nil {
			logger.WithError(err).Error("failed to encode order intent response")
		}
	}
}
