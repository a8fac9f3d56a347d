package connectors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nntaoli-project/goex"
	"github.com/nntaoli-project/goex/binance"
	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

// BinanceCandleSource backfills chart candles from Binance spot klines.
type BinanceCandleSource struct {
	exchange goex.API
}

func NewBinanceCandleSource() *BinanceCandleSource {
	apiConfig := &goex.APIConfig{
		HttpClient: http.DefaultClient,
		Endpoint:   binance.GLOBAL_API_BASE_URL,
	}
	return &BinanceCandleSource{exchange: binance.NewWithConfig(apiConfig)}
}

// FetchCandles pulls up to size klines for base/quote at the given duration
// ("1m" or "1h") and maps them into candle rows keyed by "BASE_QUOTE".
func (s *BinanceCandleSource) FetchCandles(base, quote, durationStr string, size int) ([]model.Candle, error) {
	period, err := klinePeriod(durationStr)
	if err != nil {
		return nil, err
	}

	pair := goex.NewCurrencyPair(goex.Currency{Symbol: base}, goex.Currency{Symbol: quote})
	klines, err := s.exchange.GetKlineRecords(pair, period, size)
	if err != nil {
		return nil, fmt.Errorf("fetching klines for %s: %w", pair.String(), err)
	}

	candles := make([]model.Candle, 0, len(klines))
	for _, k := range klines {
		candles = append(candles, model.Candle{
			Symbol:   k.Pair.String(),
			Datetime: time.Unix(k.Timestamp, 0).UTC(),
			Open:     decimal.NewFromFloat(k.Open),
			High:     decimal.NewFromFloat(k.High),
			Low:      decimal.NewFromFloat(k.Low),
			Close:    decimal.NewFromFloat(k.Close),
			Volume:   decimal.NewFromFloat(k.Vol),
		})
	}
	return candles, nil
}

func klinePeriod(durationStr string) (goex.KlinePeriod, error) {
	switch durationStr {
	case "1m":
		return goex.KLINE_PERIOD_1MIN, nil
	case "1h":
		return goex.KLINE_PERIOD_1H, nil
	default:
		return 0, fmt.Errorf("invalid duration %q, allowed: 1m,1h", durationStr)
	}
}
