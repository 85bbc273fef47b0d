package holdings

import "errors"

var (
	// ErrStorageFormat is returned when the persisted holdings table cannot be read.
	ErrStorageFormat = errors.New("storage format error")
	// ErrLookup is returned when a symbol is unknown to the market data source,
	// or when the source itself failed.
	ErrLookup = errors.New("market data lookup error")
	// ErrInput is returned for share counts that cannot be added to a holding.
	ErrInput = errors.New("invalid input")
)
