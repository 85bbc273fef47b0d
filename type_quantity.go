package holdings

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the Quantity for value.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal number of shares.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) String() string          { return q.value.String() }

// MarshalCSV implements gocsv.TypeMarshaller.
func (q Quantity) MarshalCSV() (string, error) { return q.value.String(), nil }

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (q *Quantity) UnmarshalCSV(s string) error {
	p, err := ParseQuantity(s)
	if err != nil {
		return err
	}
	*q = p
	return nil
}
