package connectors_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"orderdesk/src/connectors"
)

const tickerPayload = `{
	"result": "success",
	"serverTime": "2025-03-04T12:00:00.000Z",
	"ticker": {
		"symbol": "PF_ETHUSD",
		"bid": 3325.4,
		"ask": 3325.8,
		"last": 3325.6,
		"open24h": 3300.0,
		"vol24h": 125000.0
	}
}`

func TestKrakenTickerClient_Quote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/tickers/PF_ETHUSD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tickerPayload))
	}))
	defer srv.Close()

	c := connectors.NewKrakenTickerClient(srv.URL)

	quote, err := c.Quote(context.Background(), "PF_ETHUSD")
	require.NoError(t, err)

	require.Equal(t, "PF_ETHUSD", quote.Symbol)
	require.Equal(t, "3325.6", quote.LastPrice.String())
	require.Equal(t, "3325.4", quote.BestBid.String())
	require.Equal(t, "3325.8", quote.BestAsk.String())
	require.False(t, quote.Timestamp.IsZero())
}

func TestKrakenTickerClient_ErrorResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"error","errors":["symbol not found"]}`))
	}))
	defer srv.Close()

	c := connectors.NewKrakenTickerClient(srv.URL)

	_, err := c.Quote(context.Background(), "PF_NOPE")
	require.Error(t, err)
	require.Contains(t, err.Error(), "symbol not found")
}

func TestKrakenTickerClient_DegeneratePrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","ticker":{"symbol":"PF_ETHUSD","bid":0,"ask":0,"last":0}}`))
	}))
	defer srv.Close()

	c := connectors.NewKrakenTickerClient(srv.URL)

	_, err := c.Quote(context.Background(), "PF_ETHUSD")
	require.Error(t, err)
}

func TestKrakenTickerClient_EmptySymbol(t *testing.T) {
	c := connectors.NewKrakenTickerClient("http://localhost:1")

	_, err := c.GetTickerBySymbol(context.Background(), " ")
	require.Error(t, err)
}
