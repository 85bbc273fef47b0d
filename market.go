package holdings

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/market.go -package=mocks . MarketData

// Quote is the descriptive information about a symbol.
type Quote struct {
	ShortName string
}

// MarketData is the source of company names and prices.
//
// Implementations report unknown symbols and source failures as errors; the
// Store never retries them.
type MarketData interface {
	// QuoteInfo returns the descriptive information about symbol.
	QuoteInfo(symbol string) (Quote, error)
	// LatestClose returns the most recent closing price of symbol.
	LatestClose(symbol string) (decimal.Decimal, error)
}

// lookupError makes sure err matches ErrLookup.
func lookupError(symbol string, err error) error {
	if errors.Is(err, ErrLookup) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrLookup, symbol, err)
}
