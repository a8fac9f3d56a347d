package connectors

// PUBLIC MARKET-DATA CLIENT FOR KRAKEN FUTURES (v3 /derivatives)
// RESTY ONLY + INTERNAL RETRY, NO AUTH NEEDED FOR TICKERS

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"orderdesk/src/model"
)

const (
	// Default retry configuration
	defaultRetryAttempts   = 5
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultRetryMaxBackoff = 8 * time.Second
)

// Kraken Futures uses /derivatives + /api/v3/...
const (
	defaultKrakenDerivativesBaseURL = "https://futures.kraken.com/derivatives"
	apiV3Prefix                     = "/api/v3"
)

type KrakenTickerResponse struct {
	Result     string       `json:"result"`
	ServerTime string       `json:"serverTime"`
	Ticker     KrakenTicker `json:"ticker"`
	Error      string       `json:"error,omitempty"`
	Errors     []string     `json:"errors,omitempty"`
}

type KrakenTicker struct {
	Symbol string  `json:"symbol"`
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Last   float64 `json:"last"`
	Open24 float64 `json:"open24h"`
	Vol24  float64 `json:"vol24h"`
}

// KrakenTickerClient fetches top-of-book quotes from the public Kraken
// Futures ticker endpoint. Only unauthenticated market data, no trading.
type KrakenTickerClient struct {
	baseURL string
	http    *resty.Client
}

func NewKrakenTickerClient(baseURL string) *KrakenTickerClient {
	retryCount := defaultRetryAttempts - 1

	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultKrakenDerivativesBaseURL
		logger.Warnf("No base URL provided, using default: %s", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(retryCount).
		SetRetryWaitTime(defaultRetryBaseDelay).
		SetRetryMaxWaitTime(defaultRetryMaxBackoff).
		AddRetryCondition(isRetryableResp)

	return &KrakenTickerClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

func isRetryableResp(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return true
	}
	code := resp.StatusCode()
	return code == 429 || code >= 500
}

// GetTickerBySymbol GET /tickers/:symbol
func (c *KrakenTickerClient) GetTickerBySymbol(ctx context.Context, symbol string) (*KrakenTickerResponse, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, errors.New("symbol is required")
	}

	var out KrakenTickerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(apiV3Prefix + "/tickers/" + url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("kraken ticker request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("kraken ticker non-2xx status: %d", resp.StatusCode())
	}
	if out.Result != "success" {
		return nil, fmt.Errorf("kraken ticker error result: %s %s", out.Error, strings.Join(out.Errors, ","))
	}
	return &out, nil
}

// Quote fetches the current ticker and maps it into a MarketQuote. Satisfies
// the same source interface as the simulator so the two are interchangeable.
func (c *KrakenTickerClient) Quote(ctx context.Context, symbol string) (model.MarketQuote, error) {
	out, err := c.GetTickerBySymbol(ctx, symbol)
	if err != nil {
		return model.MarketQuote{}, err
	}

	t := out.Ticker
	if t.Bid <= 0 || t.Ask <= 0 || t.Last <= 0 {
		return model.MarketQuote{}, fmt.Errorf("kraken ticker for %s has degenerate prices: bid=%f ask=%f last=%f",
			symbol, t.Bid, t.Ask, t.Last)
	}

	return model.MarketQuote{
		Symbol:    symbol,
		LastPrice: decimal.NewFromFloat(t.Last),
		BestBid:   decimal.NewFromFloat(t.Bid),
		BestAsk:   decimal.NewFromFloat(t.Ask),
		Timestamp: time.Now().UTC(),
	}, nil
}
