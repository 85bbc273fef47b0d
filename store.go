package holdings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"slices"

	"go.uber.org/zap"
)

// Store is the table of holdings bound to its CSV file.
//
// Every change is written back to the file before the mutating method
// returns. A Store is not safe for concurrent use.
type Store struct {
	path     string
	market   MarketData
	holdings []*Holding // in file or insertion order
	index    map[string]*Holding
}

// NewStore returns an empty store bound to path. Nothing is written until the
// first change.
func NewStore(path string, market MarketData) *Store {
	return &Store{
		path:   path,
		market: market,
		index:  make(map[string]*Holding),
	}
}

// Open loads the store persisted in path. A missing file is an empty store.
//
// market is only used to look up new symbols and prices, it can be nil for a
// read-only use of the store.
func Open(path string, market MarketData) (*Store, error) {
	s := NewStore(path, market)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		zap.S().Debugw("holdings file does not exist, starting empty", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list, err := decodeHoldings(path, f)
	if err != nil {
		return nil, err
	}
	for _, h := range list {
		s.holdings = append(s.holdings, h)
		s.index[h.Symbol] = h
	}
	zap.S().Debugw("holdings loaded", "path", path, "count", len(list))
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Len returns the number of holdings.
func (s *Store) Len() int { return len(s.holdings) }

// Get returns a copy of the holding for symbol, if any.
func (s *Store) Get(symbol string) (Holding, bool) {
	h, ok := s.index[normalize(symbol)]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings iterates over copies of all holdings in store order.
func (s *Store) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range s.holdings {
			if !yield(*h) {
				return
			}
		}
	}
}

// Symbols returns the held symbols in store order.
func (s *Store) Symbols() []string {
	symbols := make([]string, 0, len(s.holdings))
	for _, h := range s.holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

// Save rewrites the whole file with the current holdings.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := encodeHoldings(&buf, s.holdings); err != nil {
		return fmt.Errorf("cannot encode holdings: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write holdings file %q: %w", s.path, err)
	}
	zap.S().Debugw("holdings saved", "path", s.path, "count", len(s.holdings))
	return nil
}

// Add adds shares to the holding of symbol, creating it if needed, and saves
// the store.
//
// The company name of a new symbol is looked up in the market data. Lookup
// failures are returned as ErrLookup and leave the store untouched.
func (s *Store) Add(symbol string, shares Quantity) error {
	symbol = normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInput)
	}
	if !shares.IsPositive() {
		return fmt.Errorf("%w: shares must be positive, got %s", ErrInput, shares)
	}

	if h, exists := s.index[symbol]; exists {
		h.Shares = h.Shares.Add(shares)
		zap.S().Infow("shares added", "symbol", symbol, "added", shares.String(), "shares", h.Shares.String())
		return s.Save()
	}

	if s.market == nil {
		return fmt.Errorf("%w: %s: no market data source", ErrLookup, symbol)
	}
	quote, err := s.market.QuoteInfo(symbol)
	if err != nil {
		return lookupError(symbol, err)
	}

	h := &Holding{Symbol: symbol, Shares: shares, CompanyName: quote.ShortName}
	s.holdings = append(s.holdings, h)
	s.index[symbol] = h
	zap.S().Infow("holding created", "symbol", symbol, "shares", shares.String(), "company", quote.ShortName)
	return s.Save()
}

// Remove deletes the holding of symbol and saves the store.
//
// It returns false, without saving, if symbol is not held.
func (s *Store) Remove(symbol string) (bool, error) {
	symbol = normalize(symbol)
	if _, exists := s.index[symbol]; !exists {
		return false, nil
	}
	delete(s.index, symbol)
	s.holdings = slices.DeleteFunc(s.holdings, func(h *Holding) bool { return h.Symbol == symbol })
	zap.S().Infow("holding removed", "symbol", symbol)
	return true, s.Save()
}
