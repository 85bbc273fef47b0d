package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/mocks"
	"go.uber.org/mock/gomock"
)

// usePortfolio points the app to a temporary portfolio file with content (none
// if empty) and to a mocked market data. It returns the file path.
func usePortfolio(t *testing.T, content string) (string, *mocks.MockMarketData) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.csv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write portfolio file: %v", err)
		}
	}

	market := mocks.NewMockMarketData(gomock.NewController(t))

	oldPortfolioFile, oldNewMarket := portfolioFile, newMarket
	portfolioFile = &path
	newMarket = func() holdings.MarketData { return market }
	t.Cleanup(func() {
		portfolioFile, newMarket = oldPortfolioFile, oldNewMarket
	})
	return path, market
}

// readFile returns the content of path, "" if it does not exist.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("Failed to read %q: %v", path, err)
	}
	return string(content)
}
