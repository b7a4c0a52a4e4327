package account

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildPriceIndexFiltersQuotes(t *testing.T) {
	tickers := []Ticker{
		{Symbol: "BTCUSDT", Price: d("50000")},
		{Symbol: "ETHBTC", Price: d("0.05")},
		{Symbol: "ETHEUR", Price: d("2000")},
		{Symbol: "DOGETRY", Price: d("3")},
	}
	idx := BuildPriceIndex(tickers, []string{"USDT", "BTC"})
	if len(idx) != 2 {
		t.Fatalf("expected 2 indexed pairs, got %d", len(idx))
	}
	if p, ok := idx.Price("BTCUSDT"); !ok || !p.Equal(d("50000")) {
		t.Fatalf("BTCUSDT price wrong: %v %v", p, ok)
	}
	if _, ok := idx.Price("ETHEUR"); ok {
		t.Fatalf("ETHEUR should not be indexed")
	}
}

func TestPriceIndexMissingSymbol(t *testing.T) {
	idx := BuildPriceIndex(nil, []string{"USDT"})
	if _, ok := idx.Price("BTCUSDT"); ok {
		t.Fatalf("empty index should miss")
	}
}
