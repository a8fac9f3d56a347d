package seedcandles

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Symbol      string `envconfig:"SEED_SYMBOL" default:"ETH"`
	Quote       string `envconfig:"SEED_QUOTE" default:"USDT"`
	DurationStr string `envconfig:"SEED_DURATION" default:"1h"`
	Limit       int    `envconfig:"SEED_LIMIT" default:"500"`

	// "sim" generates deterministic demo candles, "binance" backfills real
	// klines.
	Source  string `envconfig:"SEED_SOURCE" default:"sim"`
	SimSeed int64  `envconfig:"SEED_SIM_SEED" default:"42"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
