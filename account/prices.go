package account

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ticker is one symbol/price pair from the exchange ticker snapshot.
type Ticker struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// PriceIndex maps a trading-pair symbol to its last traded price.
// Built once per run from a ticker snapshot, read-only afterwards.
type PriceIndex map[string]decimal.Decimal

// BuildPriceIndex keeps only pairs quoted in one of the given quote assets.
// Not every asset trades against every quote, so pairs with other quotes
// are skipped silently; a held asset without a usable price surfaces later
// as a MissingPriceError during valuation.
func BuildPriceIndex(tickers []Ticker, quotes []string) PriceIndex {
	idx := make(PriceIndex, len(tickers))
	for _, t := range tickers {
		for _, q := range quotes {
			if strings.HasSuffix(t.Symbol, q) {
				idx[t.Symbol] = t.Price
				break
			}
		}
	}
	return idx
}

// Price returns the indexed price for a pair symbol.
func (p PriceIndex) Price(symbol string) (decimal.Decimal, bool) {
	v, ok := p[symbol]
	return v, ok
}
