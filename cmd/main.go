package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"orderdesk/cmd/seedcandles"
	"orderdesk/src/database"
	"orderdesk/src/economics"
	"orderdesk/src/model"
	"orderdesk/src/server"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "Orderdesk CMD"
	app.Usage = "The orderdesk command line interface"

	app.Commands = []cli.Command{
		serverCMD,
		seedCMD,
		previewCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	serverCMD = cli.Command{
		Name:        "server",
		Usage:       "run the API server",
		Action:      serverAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Serve quotes, order-book snapshots, candles and order economics over HTTP`,
	}
	seedCMD = cli.Command{
		Name:        "seed",
		Usage:       "seed the candle store",
		Action:      seedAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Fill the candle store with demo bars or a Binance backfill`,
	}
	previewCMD = cli.Command{
		Name:      "preview",
		Usage:     "compute order economics for one draft",
		Action:    previewAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "side", Value: "long", Usage: "long or short"},
			cli.StringFlag{Name: "type", Value: "limit", Usage: "market, limit, stop_limit or stop_market"},
			cli.StringFlag{Name: "price", Value: "", Usage: "limit price (raw text, may be empty)"},
			cli.StringFlag{Name: "size", Value: "", Usage: "order size (raw text)"},
			cli.StringFlag{Name: "unit", Value: "base", Usage: "size unit: base or quote"},
			cli.IntFlag{Name: "leverage", Value: 1, Usage: "leverage 1-100"},
			cli.StringFlag{Name: "last", Value: "3325.60", Usage: "last trade price"},
			cli.StringFlag{Name: "bid", Value: "3325.40", Usage: "best bid"},
			cli.StringFlag{Name: "ask", Value: "3325.80", Usage: "best ask"},
			cli.StringFlag{Name: "fee-rate", Value: "0.0005", Usage: "taker fee rate"},
			cli.StringFlag{Name: "mmr", Value: "0.005", Usage: "maintenance margin ratio"},
		},
		Description: `Run the preview pipeline once and print the resulting economics as JSON`,
	}
)

func serverAction(_ *cli.Context) error {
	logrus.Info("Starting API server CMD")

	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	server.StartServer(server.GetConfig())
	return nil
}

func seedAction(_ *cli.Context) error {
	logrus.Info("Starting candle seed CMD")

	if err := database.InitMainDB(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	seeder := &seedcandles.SeedCandles{
		Log: logrus.WithField("cmd", "seed"),
		DB:  database.MainDB,
	}

	if err := seeder.Start(); err != nil {
		logrus.WithError(err).Error("Starting seed cmd")
		return err
	}

	return nil
}

func previewAction(c *cli.Context) error {
	side := model.Side(c.String("side"))
	if !side.Valid() {
		return fmt.Errorf("invalid side %q", c.String("side"))
	}
	orderType := model.OrderType(c.String("type"))
	if !orderType.Valid() {
		return fmt.Errorf("invalid order type %q", c.String("type"))
	}
	unit := model.SizeUnit(c.String("unit"))
	if !unit.Valid() {
		return fmt.Errorf("invalid size unit %q", c.String("unit"))
	}

	last, err := decimal.NewFromString(c.String("last"))
	if err != nil {
		return fmt.Errorf("invalid last price: %w", err)
	}
	bid, err := decimal.NewFromString(c.String("bid"))
	if err != nil {
		return fmt.Errorf("invalid bid: %w", err)
	}
	ask, err := decimal.NewFromString(c.String("ask"))
	if err != nil {
		return fmt.Errorf("invalid ask: %w", err)
	}
	feeRate, err := decimal.NewFromString(c.String("fee-rate"))
	if err != nil {
		return fmt.Errorf("invalid fee rate: %w", err)
	}
	mmr, err := decimal.NewFromString(c.String("mmr"))
	if err != nil {
		return fmt.Errorf("invalid maintenance margin ratio: %w", err)
	}

	draft := model.OrderDraft{
		Symbol:     "PREVIEW",
		Side:       side,
		Type:       orderType,
		PriceInput: c.String("price"),
		SizeInput:  c.String("size"),
		SizeUnit:   unit,
		Leverage:   c.Int("leverage"),
	}
	quote := model.MarketQuote{
		Symbol:    "PREVIEW",
		LastPrice: last,
		BestBid:   bid,
		BestAsk:   ask,
	}

	eco := economics.PreviewDraft(draft, quote, feeRate, mmr)

	out, err := json.MarshalIndent(eco, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
