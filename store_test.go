package holdings_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var equalQuantity = cmp.Comparer(func(a, b holdings.Quantity) bool { return a.Equal(b) })

// writeFile creates a holdings file in a temp dir and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %q: %v", path, err)
	}
	return path
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	s, err := holdings.Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() must not create the file, Stat() error = %v", err)
	}
}

func TestOpen_MalformedFile(t *testing.T) {
	path := writeFile(t, "Ticker,Shares\nAAPL,10\n")
	if _, err := holdings.Open(path, nil); !errors.Is(err, holdings.ErrStorageFormat) {
		t.Errorf("Open() error = %v, want ErrStorageFormat", err)
	}
}

func TestStore_AddAccumulatesShares(t *testing.T) {
	market := mocks.NewMockMarketData(gomock.NewController(t))
	// the company name is fetched at creation only.
	market.EXPECT().QuoteInfo("AAPL").Return(holdings.Quote{ShortName: "Apple Inc."}, nil).Times(1)

	s := holdings.NewStore(filepath.Join(t.TempDir(), "portfolio.csv"), market)
	if err := s.Add("aapl", holdings.Q(10)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("AAPL", holdings.Q(5)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, ok := s.Get("AAPL")
	if !ok {
		t.Fatal("Get(AAPL) not found")
	}
	want := holdings.Holding{Symbol: "AAPL", Shares: holdings.Q(15), CompanyName: "Apple Inc."}
	if diff := cmp.Diff(want, got, equalQuantity); diff != "" {
		t.Errorf("Get(AAPL) mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_AddSaves(t *testing.T) {
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().QuoteInfo("MSFT").Return(holdings.Quote{ShortName: "Microsoft Corporation"}, nil)

	path := filepath.Join(t.TempDir(), "portfolio.csv")
	s := holdings.NewStore(path, market)
	if err := s.Add("msft", holdings.Q(5)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	want := "Symbol,Shares,Company Name\nMSFT,5,Microsoft Corporation\n"
	if string(content) != want {
		t.Errorf("file content = %q, want %q", content, want)
	}
}

func TestStore_AddLookupError(t *testing.T) {
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().QuoteInfo("NOPE").Return(holdings.Quote{}, errors.New("no such symbol"))

	path := filepath.Join(t.TempDir(), "portfolio.csv")
	s := holdings.NewStore(path, market)
	err := s.Add("nope", holdings.Q(1))
	if !errors.Is(err, holdings.ErrLookup) {
		t.Fatalf("Add() error = %v, want ErrLookup", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("a failed Add() must not save, Stat() error = %v", err)
	}
}

func TestStore_AddRejectsNonPositiveShares(t *testing.T) {
	// no expectation: the market must not be queried.
	market := mocks.NewMockMarketData(gomock.NewController(t))
	s := holdings.NewStore(filepath.Join(t.TempDir(), "portfolio.csv"), market)

	for _, q := range []holdings.Quantity{holdings.Q(0), holdings.Q(-3)} {
		if err := s.Add("AAPL", q); !errors.Is(err, holdings.ErrInput) {
			t.Errorf("Add(AAPL, %v) error = %v, want ErrInput", q, err)
		}
	}
	if err := s.Add("  ", holdings.Q(1)); !errors.Is(err, holdings.ErrInput) {
		t.Errorf("Add(blank) error = %v, want ErrInput", err)
	}
}

func TestStore_Remove(t *testing.T) {
	path := writeFile(t, "Symbol,Shares,Company Name\nAAPL,10,Apple Inc.\nMSFT,5,Microsoft Corporation\n")
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().LatestClose("MSFT").Return(decimal.NewFromInt(300), nil)

	s, err := holdings.Open(path, market)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	removed, err := s.Remove("aapl")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !removed {
		t.Fatal("Remove(aapl) = false, want true")
	}

	v, err := s.Valuation()
	if err != nil {
		t.Fatalf("Valuation() error = %v", err)
	}
	for _, p := range v.Positions {
		if p.Symbol == "AAPL" {
			t.Errorf("Valuation() still contains AAPL")
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(content), "AAPL") {
		t.Errorf("file still contains AAPL:\n%s", content)
	}
}

func TestStore_RemoveAbsentDoesNotSave(t *testing.T) {
	// unusual but valid formatting, that a save would rewrite.
	original := "Company Name,Symbol,Shares\nApple Inc.,AAPL,10.0\n"
	path := writeFile(t, original)

	s, err := holdings.Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	removed, err := s.Remove("GOOG")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed {
		t.Error("Remove(GOOG) = true, want false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != original {
		t.Errorf("file changed to %q, want %q", content, original)
	}
}

func TestStore_SaveOpenRoundTrip(t *testing.T) {
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().QuoteInfo("AAPL").Return(holdings.Quote{ShortName: "Apple Inc."}, nil)
	market.EXPECT().QuoteInfo("BRK-B").Return(holdings.Quote{ShortName: "Berkshire Hathaway Inc. New"}, nil)
	market.EXPECT().QuoteInfo("FOO").Return(holdings.Quote{ShortName: `Foo, "the" company`}, nil)

	path := filepath.Join(t.TempDir(), "portfolio.csv")
	s := holdings.NewStore(path, market)
	for _, add := range []struct {
		symbol string
		shares int
	}{{"FOO", 3}, {"aapl", 10}, {"brk-b", 2}, {"AAPL", 1}} {
		if err := s.Add(add.symbol, holdings.Q(add.shares)); err != nil {
			t.Fatalf("Add(%s) error = %v", add.symbol, err)
		}
	}

	reloaded, err := holdings.Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	bySymbol := func(a, b holdings.Holding) int { return strings.Compare(a.Symbol, b.Symbol) }
	want := slices.SortedFunc(s.Holdings(), bySymbol)
	got := slices.SortedFunc(reloaded.Holdings(), bySymbol)
	if diff := cmp.Diff(want, got, equalQuantity); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_TotalValueEmpty(t *testing.T) {
	market := mocks.NewMockMarketData(gomock.NewController(t))
	s := holdings.NewStore(filepath.Join(t.TempDir(), "portfolio.csv"), market)

	total, err := s.TotalValue()
	if err != nil {
		t.Fatalf("TotalValue() error = %v", err)
	}
	if !total.IsZero() {
		t.Errorf("TotalValue() = %v, want 0", total)
	}
}

func TestStore_TotalValue(t *testing.T) {
	path := writeFile(t, "Symbol,Shares,Company Name\nAAPL,10,Apple Inc.\nMSFT,5,Microsoft Corporation\n")
	market := mocks.NewMockMarketData(gomock.NewController(t))
	// no caching: each call queries every symbol again.
	market.EXPECT().LatestClose("AAPL").Return(decimal.RequireFromString("150.00"), nil).Times(2)
	market.EXPECT().LatestClose("MSFT").Return(decimal.RequireFromString("300.00"), nil).Times(2)

	s, err := holdings.Open(path, market)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for range 2 {
		total, err := s.TotalValue()
		if err != nil {
			t.Fatalf("TotalValue() error = %v", err)
		}
		if want := holdings.M(3000, holdings.ReportingCurrency); !total.Equal(want) {
			t.Errorf("TotalValue() = %v, want %v", total, want)
		}
		if got, want := total.String(), "$3,000.00"; got != want {
			t.Errorf("TotalValue().String() = %q, want %q", got, want)
		}
	}
}

func TestStore_TotalValueLookupError(t *testing.T) {
	path := writeFile(t, "Symbol,Shares,Company Name\nAAPL,10,Apple Inc.\n")
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().LatestClose("AAPL").Return(decimal.Zero, errors.New("network is unreachable"))

	s, err := holdings.Open(path, market)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := s.TotalValue(); !errors.Is(err, holdings.ErrLookup) {
		t.Errorf("TotalValue() error = %v, want ErrLookup", err)
	}
}

func TestStore_Valuation(t *testing.T) {
	// file order is kept.
	path := writeFile(t, "Symbol,Shares,Company Name\nMSFT,5,Microsoft Corporation\nAAPL,10,Apple Inc.\n")
	market := mocks.NewMockMarketData(gomock.NewController(t))
	market.EXPECT().LatestClose("AAPL").Return(decimal.RequireFromString("150.00"), nil)
	market.EXPECT().LatestClose("MSFT").Return(decimal.RequireFromString("300.00"), nil)

	s, err := holdings.Open(path, market)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	v, err := s.Valuation()
	if err != nil {
		t.Fatalf("Valuation() error = %v", err)
	}

	usd := func(v int) holdings.Money { return holdings.M(v, holdings.ReportingCurrency) }
	want := &holdings.Valuation{
		Positions: []holdings.Position{
			{Symbol: "MSFT", CompanyName: "Microsoft Corporation", Shares: holdings.Q(5), Price: usd(300), Value: usd(1500)},
			{Symbol: "AAPL", CompanyName: "Apple Inc.", Shares: holdings.Q(10), Price: usd(150), Value: usd(1500)},
		},
		Total: usd(3000),
	}
	equalMoney := cmp.Comparer(func(a, b holdings.Money) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, v, equalQuantity, equalMoney); diff != "" {
		t.Errorf("Valuation() mismatch (-want +got):\n%s", diff)
	}
}
