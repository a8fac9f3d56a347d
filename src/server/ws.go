package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	logger "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// demo backend, the UI dev server runs on another origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// QuoteStreamHandler upgrades the connection and pushes one quote tick per
// interval until the client goes away. Each tick is an independent snapshot;
// a slow consumer just sees fewer of them.
func QuoteStreamHandler(quotes quoteSource, interval time.Duration) http.HandlerFunc {
	if interval <= 0 {
		interval = time.Second
	}

	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		if symbol == "" {
			http.Error(w, "symbol is required", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Error("websocket upgrade failed")
			return
		}
		defer conn.Close()

		log := logger.WithFields(logger.Fields{"ws": "quotes", "symbol": symbol})
		log.Info("quote stream opened")

		// reader goroutine: we never expect client messages, but reading is
		// the only way to notice a close frame
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				log.Info("quote stream closed by client")
				return
			case <-r.Context().Done():
				return
			case <-ticker.C:
				quote, err := quotes.Quote(r.Context(), symbol)
				if err != nil {
					log.WithError(err).Warn("failed to fetch quote for stream")
					continue
				}
				if err := conn.WriteJSON(quote); err != nil {
					log.WithError(err).Info("quote stream write failed, closing")
					return
				}
			}
		}
	}
}
