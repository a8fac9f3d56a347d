package marketdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimulatorQuote_Deterministic(t *testing.T) {
	cfg := DefaultSimulatorConfig()
	a := NewSimulator(cfg)
	b := NewSimulator(cfg)

	for i := 0; i < 50; i++ {
		qa, err := a.Quote(context.Background(), "ETH-USD")
		require.NoError(t, err)
		qb, err := b.Quote(context.Background(), "ETH-USD")
		require.NoError(t, err)

		require.True(t, qa.LastPrice.Equal(qb.LastPrice), "tick %d: %s != %s", i, qa.LastPrice, qb.LastPrice)
		require.True(t, qa.BestBid.Equal(qb.BestBid))
		require.True(t, qa.BestAsk.Equal(qb.BestAsk))
	}
}

func TestSimulatorQuote_SeedChangesSequence(t *testing.T) {
	cfg := DefaultSimulatorConfig()
	a := NewSimulator(cfg)

	cfg.Seed = 43
	b := NewSimulator(cfg)

	diverged := false
	for i := 0; i < 20; i++ {
		qa, _ := a.Quote(context.Background(), "ETH-USD")
		qb, _ := b.Quote(context.Background(), "ETH-USD")
		if !qa.LastPrice.Equal(qb.LastPrice) {
			diverged = true
			break
		}
	}
	require.True(t, diverged, "different seeds should produce different walks")
}

func TestSimulatorQuote_TopOfBookInvariant(t *testing.T) {
	sim := NewSimulator(DefaultSimulatorConfig())

	for i := 0; i < 200; i++ {
		q, err := sim.Quote(context.Background(), "BTC-USD")
		require.NoError(t, err)

		require.True(t, q.BestBid.LessThan(q.BestAsk), "bid %s must sit below ask %s", q.BestBid, q.BestAsk)
		require.True(t, q.LastPrice.GreaterThanOrEqual(q.BestBid), "last %s below bid %s", q.LastPrice, q.BestBid)
		require.True(t, q.LastPrice.LessThanOrEqual(q.BestAsk), "last %s above ask %s", q.LastPrice, q.BestAsk)
		require.True(t, q.BestBid.IsPositive())
	}
}

func TestSimulatorOrderBook(t *testing.T) {
	sim := NewSimulator(DefaultSimulatorConfig())

	book := sim.OrderBook("ETH-USD", 10)
	require.Len(t, book.Bids, 10)
	require.Len(t, book.Asks, 10)

	for i := 1; i < 10; i++ {
		require.True(t, book.Bids[i].Price.LessThan(book.Bids[i-1].Price), "bids must descend")
		require.True(t, book.Asks[i].Price.GreaterThan(book.Asks[i-1].Price), "asks must ascend")
	}

	require.True(t, book.Bids[0].Price.LessThan(book.Asks[0].Price), "book must not cross")

	for _, lvl := range append(book.Bids, book.Asks...) {
		require.True(t, lvl.Size.IsPositive())
	}
}

func TestSimulatorTrades(t *testing.T) {
	sim := NewSimulator(DefaultSimulatorConfig())

	prints := sim.Trades("ETH-USD", 25)
	require.Len(t, prints, 25)

	for i, p := range prints {
		require.Equal(t, "ETH-USD", p.Symbol)
		require.True(t, p.Price.IsPositive())
		require.True(t, p.Size.IsPositive())
		if i > 0 {
			require.False(t, p.Timestamp.After(prints[i-1].Timestamp), "prints must be most recent first")
		}
	}
}

func TestSimulatorCandles(t *testing.T) {
	sim := NewSimulator(DefaultSimulatorConfig())

	candles := sim.Candles("ETH-USD", time.Minute, 100)
	require.Len(t, candles, 100)

	for i, c := range candles {
		require.Equal(t, "ETH-USD", c.Symbol)
		require.True(t, c.High.GreaterThanOrEqual(c.Open), "high below open at %d", i)
		require.True(t, c.High.GreaterThanOrEqual(c.Close), "high below close at %d", i)
		require.True(t, c.Low.LessThanOrEqual(c.Open), "low above open at %d", i)
		require.True(t, c.Low.LessThanOrEqual(c.Close), "low above close at %d", i)
		require.True(t, c.Volume.IsPositive())

		if i > 0 {
			require.Equal(t, time.Minute, c.Datetime.Sub(candles[i-1].Datetime))
		}
	}
}
