package server

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port string `envconfig:"PORT" default:"9898"`

	// Venue constants injected into the economics calculations.
	FeeRate          decimal.Decimal `envconfig:"FEE_RATE" default:"0.0005"`
	MaintMarginRatio decimal.Decimal `envconfig:"MAINT_MARGIN_RATIO" default:"0.005"`

	// Quote source selection: "sim" for the seeded generator, "kraken" for
	// the public Kraken Futures ticker.
	QuoteSource   string `envconfig:"QUOTE_SOURCE" default:"sim"`
	KrakenBaseURL string `envconfig:"KRAKEN_BASE_URL" default:""`

	// Simulator tuning.
	SimSeed     int64           `envconfig:"SIM_SEED" default:"42"`
	SimMidPrice decimal.Decimal `envconfig:"SIM_MID_PRICE" default:"3325.60"`

	// Interval between pushed quote ticks on the websocket stream.
	StreamInterval time.Duration `envconfig:"STREAM_INTERVAL" default:"1s"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
