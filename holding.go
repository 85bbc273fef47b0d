package holdings

// Holding is the number of shares held for a single ticker symbol.
//
// CompanyName is looked up once, when the symbol is first added, and kept
// as-is afterwards.
type Holding struct {
	Symbol      string
	Shares      Quantity
	CompanyName string
}
