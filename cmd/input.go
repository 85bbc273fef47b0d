package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/holdings"
)

// ParseShares parses a number of shares typed by the user. Only whole,
// positive numbers are accepted.
func ParseShares(s string) (holdings.Quantity, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return holdings.Quantity{}, fmt.Errorf("%w: number of shares must be a whole number, got %q", holdings.ErrInput, s)
	}
	if n <= 0 {
		return holdings.Quantity{}, fmt.Errorf("%w: number of shares must be positive, got %d", holdings.ErrInput, n)
	}
	return holdings.Q(n), nil
}
