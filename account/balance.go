package account

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Balance is the exchange-reported holding for a single asset.
type Balance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// FilterBalances keeps balances with free or locked strictly above dustQty.
// Exchanges report a balance row for every asset the account ever touched;
// most of them are residual dust and would only add noise to the report.
// A balance sitting exactly on the threshold counts as dust.
func FilterBalances(balances []Balance, dustQty decimal.Decimal) map[string]Balance {
	held := make(map[string]Balance)
	for _, b := range balances {
		if b.Free.GreaterThan(dustQty) || b.Locked.GreaterThan(dustQty) {
			held[b.Asset] = b
		}
	}
	return held
}

// Assets returns the held asset symbols in ascending order.
func Assets(held map[string]Balance) []string {
	out := make([]string, 0, len(held))
	for a := range held {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
