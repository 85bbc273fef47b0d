package holdings

import "fmt"

// Position is a holding valued at its latest close.
type Position struct {
	Symbol      string
	CompanyName string
	Shares      Quantity
	Price       Money
	Value       Money
}

// Valuation is the value of every holding and their total.
type Valuation struct {
	Positions []Position
	Total     Money
}

// price fetches the latest close of symbol.
func (s *Store) price(symbol string) (Money, error) {
	if s.market == nil {
		return Money{}, fmt.Errorf("%w: %s: no market data source", ErrLookup, symbol)
	}
	p, err := s.market.LatestClose(symbol)
	if err != nil {
		return Money{}, lookupError(symbol, err)
	}
	return M(p, ReportingCurrency), nil
}

// TotalValue returns the sum of shares times latest close over all holdings.
//
// Every call queries the market data for every symbol.
func (s *Store) TotalValue() (Money, error) {
	total := M(0, ReportingCurrency)
	for _, h := range s.holdings {
		p, err := s.price(h.Symbol)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(p.Mul(h.Shares))
	}
	return total, nil
}

// Valuation values every holding at its latest close, in store order.
//
// Prices are fetched once per symbol, and Total is the sum of the returned
// position values.
func (s *Store) Valuation() (*Valuation, error) {
	v := &Valuation{
		Positions: make([]Position, 0, len(s.holdings)),
		Total:     M(0, ReportingCurrency),
	}
	for _, h := range s.holdings {
		p, err := s.price(h.Symbol)
		if err != nil {
			return nil, err
		}
		value := p.Mul(h.Shares)
		v.Positions = append(v.Positions, Position{
			Symbol:      h.Symbol,
			CompanyName: h.CompanyName,
			Shares:      h.Shares,
			Price:       p,
			Value:       value,
		})
		v.Total = v.Total.Add(value)
	}
	return v, nil
}
