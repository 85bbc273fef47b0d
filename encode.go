package holdings

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
)

// This file contains code to persist the holdings table as CSV.
//
// The file has one header row and one row per holding:
//
//	Symbol,Shares,Company Name
//	AAPL,10,Apple Inc.
//
// Symbol and Shares columns are required, Company Name is optional and
// other columns are ignored.

const (
	symbolColumn  = "Symbol"
	sharesColumn  = "Shares"
	companyColumn = "Company Name"
)

var utf8BOM = []byte("\ufeff")

// csvHolding is the row read from and written to the file using gocsv.
type csvHolding struct {
	Symbol      string   `csv:"Symbol"`
	Shares      Quantity `csv:"Shares"`
	CompanyName string   `csv:"Company Name"`
}

// decodeHoldings reads all holdings from r in row order.
// filename is for error message only.
func decodeHoldings(filename string, r io.Reader) ([]*Holding, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}

	// spreadsheet editors may start the file with a byte order mark.
	content = bytes.TrimPrefix(content, utf8BOM)

	// gocsv ignores missing columns and accepts duplicated ones, so
	// the header is checked first.
	header, err := csv.NewReader(bytes.NewReader(content)).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w in %q: missing header row", ErrStorageFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%w in %q: %w", ErrStorageFormat, filename, err)
	}
	for i, col := range header {
		if slices.Contains(header[:i], col) {
			return nil, fmt.Errorf("%w in %q: duplicate %q column", ErrStorageFormat, filename, col)
		}
	}
	for _, col := range []string{symbolColumn, sharesColumn} {
		if !slices.Contains(header, col) {
			return nil, fmt.Errorf("%w in %q: missing %q column", ErrStorageFormat, filename, col)
		}
	}

	var rows []csvHolding
	if err := gocsv.UnmarshalBytes(content, &rows); err != nil {
		return nil, fmt.Errorf("%w in %q: %w", ErrStorageFormat, filename, err)
	}

	list := make([]*Holding, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		symbol := normalize(row.Symbol)
		if symbol == "" {
			// i+2 because of the header row and 1-based lines.
			return nil, fmt.Errorf("%w in %q: empty symbol on line %d", ErrStorageFormat, filename, i+2)
		}
		if row.Shares.value.IsNegative() {
			return nil, fmt.Errorf("%w in %q: negative shares for %q on line %d", ErrStorageFormat, filename, symbol, i+2)
		}
		if seen[symbol] {
			return nil, fmt.Errorf("%w in %q: symbol %q is already defined", ErrStorageFormat, filename, symbol)
		}
		seen[symbol] = true
		list = append(list, &Holding{
			Symbol:      symbol,
			Shares:      row.Shares,
			CompanyName: row.CompanyName,
		})
	}
	return list, nil
}

// encodeHoldings writes the full table to w, header included even when empty.
func encodeHoldings(w io.Writer, list []*Holding) error {
	rows := make([]csvHolding, 0, len(list))
	for _, h := range list {
		rows = append(rows, csvHolding{
			Symbol:      h.Symbol,
			Shares:      h.Shares,
			CompanyName: h.CompanyName,
		})
	}
	return gocsv.Marshal(&rows, w)
}

// normalize returns the canonical form of a ticker symbol.
func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
