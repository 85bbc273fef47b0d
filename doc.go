// Package holdings keeps a personal ledger of stock holdings: how many shares
// of each ticker symbol are owned, and what they are worth today.
//
// The core functionalities include:
//   - Store: the table of holdings keyed by ticker symbol, loaded from and
//     fully rewritten to a CSV file after every change.
//   - Market Data: a lookup contract that returns a company's display name and
//     the latest closing price of a symbol. The yahoo and
//     eodhd packages implement it.
//   - Valuation: a one-shot read of every holding at its latest close, with
//     the grand total in the reporting currency.
//
// This package serves as the foundational logic for the `hld` command-line
// tool.
package holdings
