package marketdata

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

// SimulatorConfig drives the demo market-data generator.
type SimulatorConfig struct {
	Seed      int64
	MidPrice  decimal.Decimal // starting mid price for every symbol
	SpreadBps int64           // full bid/ask spread in basis points
	StepBps   int64           // max per-tick move in basis points
}

// DefaultSimulatorConfig reasonable defaults, tweak as you like
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Seed:      42,
		MidPrice:  decimal.NewFromFloat(3325.60),
		SpreadBps: 2,
		StepBps:   8,
	}
}

// Simulator produces deterministic pseudo-random market data: quote ticks,
// order-book depth, trade prints and candles. Everything derives from an
// explicit seed so tests (and demo sessions) are reproducible; the global
// rand source is never touched. One walk per symbol, created lazily.
type Simulator struct {
	cfg SimulatorConfig

	mu    sync.Mutex
	walks map[string]*priceWalk
}

type priceWalk struct {
	rng *rand.Rand
	mid float64
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.MidPrice.LessThanOrEqual(decimal.Zero) {
		cfg.MidPrice = DefaultSimulatorConfig().MidPrice
	}
	if cfg.SpreadBps <= 0 {
		cfg.SpreadBps = DefaultSimulatorConfig().SpreadBps
	}
	if cfg.StepBps <= 0 {
		cfg.StepBps = DefaultSimulatorConfig().StepBps
	}

	return &Simulator{
		cfg:   cfg,
		walks: make(map[string]*priceWalk),
	}
}

// walkFor returns the symbol's walk, creating it with a seed derived from the
// configured base seed and the symbol name. Caller must hold s.mu.
func (s *Simulator) walkFor(symbol string) *priceWalk {
	walk, ok := s.walks[symbol]
	if !ok {
		h := fnv.New64a()
		_, _ = h.Write([]byte(symbol))
		seed := s.cfg.Seed ^ int64(h.Sum64())

		mid, _ := s.cfg.MidPrice.Float64()
		walk = &priceWalk{
			rng: rand.New(rand.NewSource(seed)),
			mid: mid,
		}
		s.walks[symbol] = walk
	}
	return walk
}

// step advances the walk by one tick and returns the new mid price.
func (w *priceWalk) step(stepBps int64) float64 {
	move := (w.rng.Float64()*2 - 1) * float64(stepBps) / 10000
	w.mid *= 1 + move
	return w.mid
}

// Quote advances the symbol's walk one tick and returns the resulting top of
// book. The context is unused; the signature matches the live quote source.
func (s *Simulator) Quote(_ context.Context, symbol string) (model.MarketQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	walk := s.walkFor(symbol)
	mid := walk.step(s.cfg.StepBps)

	halfSpread := mid * float64(s.cfg.SpreadBps) / 20000
	bid := mid - halfSpread
	ask := mid + halfSpread
	last := bid + walk.rng.Float64()*(ask-bid)

	return model.MarketQuote{
		Symbol:    symbol,
		LastPrice: price(last),
		BestBid:   price(bid),
		BestAsk:   price(ask),
		Timestamp: time.Now().UTC(),
	}, nil
}

// OrderBook returns a depth snapshot with the given number of levels per
// side. Levels step away from the touch with decaying size.
func (s *Simulator) OrderBook(symbol string, levels int) model.OrderBook {
	if levels <= 0 {
		levels = 12
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	walk := s.walkFor(symbol)
	mid := walk.mid
	if mid == 0 {
		mid = walk.step(s.cfg.StepBps)
	}

	halfSpread := mid * float64(s.cfg.SpreadBps) / 20000
	tick := mid / 10000 // one basis point per level

	book := model.OrderBook{
		Symbol:    symbol,
		Bids:      make([]model.BookLevel, 0, levels),
		Asks:      make([]model.BookLevel, 0, levels),
		Timestamp: time.Now().UTC(),
	}

	for i := 0; i < levels; i++ {
		depthDecay := 1 + 0.25*float64(i)
		bidSize := (0.5 + walk.rng.Float64()*4.5) / depthDecay
		askSize := (0.5 + walk.rng.Float64()*4.5) / depthDecay

		book.Bids = append(book.Bids, model.BookLevel{
			Price: price(mid - halfSpread - float64(i)*tick),
			Size:  quantity(bidSize),
		})
		book.Asks = append(book.Asks, model.BookLevel{
			Price: price(mid + halfSpread + float64(i)*tick),
			Size:  quantity(askSize),
		})
	}

	return book
}

// Trades returns n synthetic trade prints, most recent first.
func (s *Simulator) Trades(symbol string, n int) []model.TradePrint {
	if n <= 0 {
		n = 30
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	walk := s.walkFor(symbol)
	now := time.Now().UTC()

	prints := make([]model.TradePrint, 0, n)
	for i := 0; i < n; i++ {
		side := model.SideLong
		if walk.rng.Intn(2) == 1 {
			side = model.SideShort
		}

		jitter := walk.mid * (walk.rng.Float64()*2 - 1) * float64(s.cfg.StepBps) / 10000
		prints = append(prints, model.TradePrint{
			Symbol:    symbol,
			Side:      side,
			Price:     price(walk.mid + jitter),
			Size:      quantity(0.01 + walk.rng.Float64()*2),
			Timestamp: now.Add(-time.Duration(i) * time.Second),
		})
	}
	return prints
}

// Candles generates n OHLCV bars of the given interval ending at the most
// recently completed bar, in ascending chronological order.
func (s *Simulator) Candles(symbol string, interval time.Duration, n int) []model.Candle {
	if n <= 0 {
		n = 200
	}
	if interval <= 0 {
		interval = time.Minute
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	walk := s.walkFor(symbol)
	end := time.Now().UTC().Truncate(interval)
	start := end.Add(-time.Duration(n) * interval)

	candles := make([]model.Candle, 0, n)
	open := walk.mid
	for i := 0; i < n; i++ {
		closePrice := open * (1 + (walk.rng.Float64()*2-1)*float64(s.cfg.StepBps)/10000*4)
		high := max(open, closePrice) * (1 + walk.rng.Float64()*float64(s.cfg.StepBps)/10000)
		low := min(open, closePrice) * (1 - walk.rng.Float64()*float64(s.cfg.StepBps)/10000)

		candles = append(candles, model.Candle{
			Symbol:   symbol,
			Datetime: start.Add(time.Duration(i) * interval),
			Open:     price(open),
			High:     price(high),
			Low:      price(low),
			Close:    price(closePrice),
			Volume:   quantity(5 + walk.rng.Float64()*120),
		})
		open = closePrice
	}

	walk.mid = open
	return candles
}

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func quantity(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(4)
}
