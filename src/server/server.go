package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"orderdesk/src/connectors"
	"orderdesk/src/handler"
	"orderdesk/src/marketdata"
	"orderdesk/src/model"
	"orderdesk/src/repository"
	"orderdesk/src/submit"
)

// quoteSource is satisfied by both the simulator and the Kraken client.
type quoteSource interface {
	Quote(ctx context.Context, symbol string) (model.MarketQuote, error)
}

func buildQuoteSource(config *Config, sim *marketdata.Simulator) quoteSource {
	if config.QuoteSource == "kraken" {
		logger.Info("Using Kraken Futures public ticker as quote source")
		return connectors.NewKrakenTickerClient(config.KrakenBaseURL)
	}
	return sim
}

// NewRouter wires every route of the API. Split from StartServer so tests
// can hit the full router without binding a port.
func NewRouter(config *Config) chi.Router {
	simCfg := marketdata.DefaultSimulatorConfig()
	simCfg.Seed = config.SimSeed
	simCfg.MidPrice = config.SimMidPrice
	sim := marketdata.NewSimulator(simCfg)

	quotes := buildQuoteSource(config, sim)
	candleRepo := repository.NewCandleRepository()
	recorder := submit.NewLogRecorder()
	params := handler.EconomicsParams{
		FeeRate:          config.FeeRate,
		MaintMarginRatio: config.MaintMarginRatio,
	}

	r := chi.NewRouter()

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("\"/healthcheck\" error")
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/quote/{symbol}", handler.QuoteHandler(quotes))
		r.Get("/orderbook/{symbol}", handler.OrderBookHandler(sim))
		r.Get("/trades/{symbol}", handler.TradesHandler(sim))
		r.Get("/candles/{symbol}", handler.CandlesHandler(candleRepo))
		r.Post("/orders/preview", handler.PreviewOrderHandler(quotes, params))
		r.Post("/orders", handler.SubmitOrderHandler(quotes, recorder))
	})

	r.Get("/ws/quotes/{symbol}", QuoteStreamHandler(quotes, config.StreamInterval))

	return r
}

// StartServer runs the API until SIGINT or SIGTERM, then shuts down
// gracefully.
func StartServer(config *Config) {
	r := NewRouter(config)

	addr := ":" + config.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
