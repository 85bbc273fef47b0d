// Package eodhd implements holdings.MarketData with the EOD Historical Data API.
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/etnz/holdings"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// APIKeyEnv is the environment variable holding the EODHD API key.
const APIKeyEnv = "EODHD_API_KEY"

// DemoKey is the public EODHD key. It only serves a handful of tickers (e.g. AAPL.US, MCD.US).
const DemoKey = "demo"

const (
	defaultBaseURL  = "https://eodhd.com/api"
	defaultExchange = "US" // see https://eodhd.com/financial-apis/covered-tickers-eodhd
	defaultWindow   = 7 * 24 * time.Hour
)

// Client queries EODHD for company names and end of day prices.
type Client struct {
	apiKey   string
	baseURL  string
	exchange string
	window   time.Duration
	now      func() time.Time
	http     *http.Client
}

// New returns a Client using apiKey, or the APIKeyEnv environment variable if
// apiKey is empty.
func New(apiKey string) *Client {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		exchange: defaultExchange,
		window:   defaultWindow,
		now:      time.Now,
		http:     http.DefaultClient,
	}
}

// ticker returns the EODHD ticker of symbol, in the form "CODE.EXCHANGE".
//
// Symbols without an exchange are looked up in the US exchanges.
func (c *Client) ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + "." + c.exchange
}

// searchResult matches a single item in the EODHD search API response.
type searchResult struct {
	Code     string `json:"Code"`
	Exchange string `json:"Exchange"`
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Currency string `json:"Currency"`
	ISIN     string `json:"ISIN"`
}

// QuoteInfo searches symbol and returns the name of the matching ticker.
func (c *Client) QuoteInfo(symbol string) (holdings.Quote, error) {
	if c.apiKey == "" {
		return holdings.Quote{}, fmt.Errorf("%w: missing EODHD API key, set %s", holdings.ErrLookup, APIKeyEnv)
	}
	// https://eodhd.com/api/search/AAPL?api_token=demo&fmt=json
	addr := fmt.Sprintf("%s/search/%s?fmt=json&api_token=%s", c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	var results []searchResult
	if err := jwget(c.http, addr, &results); err != nil {
		return holdings.Quote{}, fmt.Errorf("%w: cannot search %s: %w", holdings.ErrLookup, symbol, err)
	}
	r, ok := c.match(symbol, results)
	if !ok {
		return holdings.Quote{}, fmt.Errorf("%w: unknown symbol %s", holdings.ErrLookup, symbol)
	}
	zap.S().Debugw("eodhd search", "symbol", symbol, "code", r.Code, "exchange", r.Exchange, "name", r.Name)
	return holdings.Quote{ShortName: r.Name}, nil
}

// match finds the search result of symbol, preferring the client's exchange.
func (c *Client) match(symbol string, results []searchResult) (searchResult, bool) {
	code, exchange, found := strings.Cut(c.ticker(symbol), ".")
	if !found {
		exchange = c.exchange
	}
	var candidate *searchResult
	for i, r := range results {
		if !strings.EqualFold(r.Code, code) || r.Name == "" {
			continue
		}
		if strings.EqualFold(r.Exchange, exchange) {
			return r, true
		}
		if candidate == nil {
			candidate = &results[i]
		}
	}
	if candidate == nil {
		return searchResult{}, false
	}
	return *candidate, true
}

// eodPrice is a daily price in the EODHD eod API response.
type eodPrice struct {
	Date  string          `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// LatestClose returns the most recent end of day close of symbol.
func (c *Client) LatestClose(symbol string) (decimal.Decimal, error) {
	if c.apiKey == "" {
		return decimal.Zero, fmt.Errorf("%w: missing EODHD API key, set %s", holdings.ErrLookup, APIKeyEnv)
	}
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2024-02-06&to=2024-02-13
	// bounds are included in the response.
	to := c.now()
	from := to.Add(-c.window)
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", c.baseURL, url.PathEscape(c.ticker(symbol)),
		url.QueryEscape(c.apiKey), from.Format(time.DateOnly), to.Format(time.DateOnly))

	var prices []eodPrice
	if err := jwget(c.http, addr, &prices); err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot get prices for %s: %w", holdings.ErrLookup, symbol, err)
	}
	// prices are sorted by date.
	for i := len(prices) - 1; i >= 0; i-- {
		if p := prices[i]; !p.Close.IsZero() {
			zap.S().Debugw("eodhd close", "symbol", symbol, "date", p.Date, "close", p.Close.String())
			return p.Close, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: no recent close for symbol %s", holdings.ErrLookup, symbol)
}
