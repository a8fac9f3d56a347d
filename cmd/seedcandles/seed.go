package seedcandles

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"orderdesk/src/connectors"
	"orderdesk/src/marketdata"
	"orderdesk/src/model"
	"orderdesk/src/repository"
)

// SeedCandles fills the candle store the chart reads from, either with
// deterministic demo bars or with a real Binance backfill.
type SeedCandles struct {
	Log    *logger.Entry
	DB     *gorm.DB
	Config *Config
}

func (s *SeedCandles) Start() error {
	if s.Config == nil {
		s.Config = GetConfig()
	}

	candles, err := s.buildCandles()
	if err != nil {
		return err
	}

	repo := repository.NewCandleRepository()
	if s.DB != nil {
		repo = repo.WithDB(s.DB)
	}

	if err := repo.UpsertBatch(context.Background(), candles); err != nil {
		return err
	}

	s.Log.WithFields(logger.Fields{
		"symbol": s.symbolKey(),
		"count":  len(candles),
		"source": s.Config.Source,
	}).Info("Candle store seeded")

	return nil
}

func (s *SeedCandles) buildCandles() ([]model.Candle, error) {
	switch s.Config.Source {
	case "sim":
		return s.generateCandles()
	case "binance":
		source := connectors.NewBinanceCandleSource()
		return source.FetchCandles(s.Config.Symbol, s.Config.Quote, s.Config.DurationStr, s.Config.Limit)
	default:
		return nil, fmt.Errorf("invalid seed source %q, allowed: sim,binance", s.Config.Source)
	}
}

func (s *SeedCandles) generateCandles() ([]model.Candle, error) {
	interval, err := s.interval()
	if err != nil {
		return nil, err
	}

	simCfg := marketdata.DefaultSimulatorConfig()
	simCfg.Seed = s.Config.SimSeed
	sim := marketdata.NewSimulator(simCfg)

	return sim.Candles(s.symbolKey(), interval, s.Config.Limit), nil
}

func (s *SeedCandles) interval() (time.Duration, error) {
	switch s.Config.DurationStr {
	case "1m":
		return time.Minute, nil
	case "1h":
		return time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid duration %q, allowed: 1m,1h", s.Config.DurationStr)
	}
}

func (s *SeedCandles) symbolKey() string {
	return s.Config.Symbol + "_" + s.Config.Quote
}
