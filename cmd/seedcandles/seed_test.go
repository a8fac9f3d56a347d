package seedcandles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildCandles_SimIsDeterministic(t *testing.T) {
	cfg := &Config{Symbol: "ETH", Quote: "USDT", DurationStr: "1m", Limit: 50, Source: "sim", SimSeed: 7}

	a := &SeedCandles{Config: cfg}
	b := &SeedCandles{Config: cfg}

	candlesA, err := a.buildCandles()
	require.NoError(t, err)
	candlesB, err := b.buildCandles()
	require.NoError(t, err)

	require.Len(t, candlesA, 50)
	require.Len(t, candlesB, 50)

	for i := range candlesA {
		require.Equal(t, "ETH_USDT", candlesA[i].Symbol)
		require.True(t, candlesA[i].Close.Equal(candlesB[i].Close), "bar %d differs", i)
	}
}

func TestBuildCandles_Validation(t *testing.T) {
	s := &SeedCandles{Config: &Config{Symbol: "ETH", Quote: "USDT", DurationStr: "4h", Limit: 10, Source: "sim"}}
	_, err := s.buildCandles()
	require.Error(t, err)

	s = &SeedCandles{Config: &Config{Symbol: "ETH", Quote: "USDT", DurationStr: "1h", Limit: 10, Source: "csv"}}
	_, err = s.buildCandles()
	require.Error(t, err)
}

func TestInterval(t *testing.T) {
	s := &SeedCandles{Config: &Config{DurationStr: "1m"}}
	got, err := s.interval()
	require.NoError(t, err)
	require.Equal(t, time.Minute, got)

	s.Config.DurationStr = "1h"
	got, err = s.interval()
	require.NoError(t, err)
	require.Equal(t, time.Hour, got)
}
