// Package yahoo implements holdings.MarketData with Yahoo Finance.
package yahoo

import (
	"fmt"
	"time"

	"github.com/etnz/holdings"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultWindow is how far back daily bars are requested to find the latest
// close. It spans weekends and market holidays.
const DefaultWindow = 7 * 24 * time.Hour

// Client queries Yahoo Finance for quotes and daily closes.
type Client struct {
	window time.Duration
	now    func() time.Time
}

// New returns a Client looking for closes within DefaultWindow.
func New() *Client {
	return &Client{window: DefaultWindow, now: time.Now}
}

// QuoteInfo returns the short name of symbol, or its long name when Yahoo has
// no short name for it.
func (c *Client) QuoteInfo(symbol string) (holdings.Quote, error) {
	q, err := equity.Get(symbol)
	if err != nil {
		return holdings.Quote{}, fmt.Errorf("%w: cannot get quote for %s: %w", holdings.ErrLookup, symbol, err)
	}
	if q == nil {
		return holdings.Quote{}, fmt.Errorf("%w: unknown symbol %s", holdings.ErrLookup, symbol)
	}
	zap.S().Debugw("yahoo quote", "symbol", symbol, "shortName", q.ShortName, "longName", q.LongName)
	return quoteInfo(symbol, q)
}

// quoteInfo picks the display name from a Yahoo equity quote.
func quoteInfo(symbol string, q *finance.Equity) (holdings.Quote, error) {
	name := q.ShortName
	if name == "" {
		name = q.LongName
	}
	if name == "" {
		return holdings.Quote{}, fmt.Errorf("%w: no name for symbol %s", holdings.ErrLookup, symbol)
	}
	return holdings.Quote{ShortName: name}, nil
}

// LatestClose returns the close of the most recent daily bar of symbol.
func (c *Client) LatestClose(symbol string) (decimal.Decimal, error) {
	end := c.now()
	start := end.Add(-c.window)
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	var closes []decimal.Decimal
	for iter.Next() {
		closes = append(closes, closeOf(iter.Bar()))
	}
	if err := iter.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot get prices for %s: %w", holdings.ErrLookup, symbol, err)
	}
	price, err := lastClose(symbol, closes)
	if err != nil {
		return decimal.Zero, err
	}
	zap.S().Debugw("yahoo close", "symbol", symbol, "close", price.String(), "bars", len(closes))
	return price, nil
}

// closeOf returns the close of a daily bar.
func closeOf(b *finance.ChartBar) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return b.Close
}

// lastClose returns the last non zero close.
//
// Yahoo reports days without a trade yet as bars with a zero close.
func lastClose(symbol string, closes []decimal.Decimal) (decimal.Decimal, error) {
	for i := len(closes) - 1; i >= 0; i-- {
		if !closes[i].IsZero() {
			return closes[i], nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: no recent close for symbol %s", holdings.ErrLookup, symbol)
}
