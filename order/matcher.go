package order

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Report is one open order attributed to a held asset. Unit is the quote
// part of the pair symbol, Value is OrigQty*Price in that unit.
type Report struct {
	Asset   string
	Symbol  string
	Status  Status
	OrderID int64
	Type    string
	Side    Side
	Qty     decimal.Decimal
	Price   decimal.Decimal
	Value   decimal.Decimal
	Unit    string
}

// Match attributes every open order to the held asset that owns it and
// returns reports grouped by asset in ascending asset order, preserving
// the snapshot sequence within each asset. filterSymbol, when non-empty,
// restricts the result to that exact pair (case-insensitive); a filter
// symbol owned by no held asset yields an empty report, not an error.
func Match(held []string, orders []Order, filterSymbol string, quotes []string) []Report {
	filter := strings.ToUpper(strings.TrimSpace(filterSymbol))

	assets := append([]string(nil), held...)
	sort.Strings(assets)

	byAsset := make(map[string][]Report)
	for _, o := range orders {
		if filter != "" && o.Symbol != filter {
			continue
		}
		asset, unit, ok := ownerOf(o.Symbol, assets, quotes)
		if !ok {
			continue
		}
		byAsset[asset] = append(byAsset[asset], Report{
			Asset:   asset,
			Symbol:  o.Symbol,
			Status:  o.Status,
			OrderID: o.OrderID,
			Type:    o.Type,
			Side:    o.Side,
			Qty:     o.OrigQty,
			Price:   o.Price,
			Value:   o.OrigQty.Mul(o.Price),
			Unit:    unit,
		})
	}

	var out []Report
	for _, a := range assets {
		out = append(out, byAsset[a]...)
	}
	return out
}

// ownerOf resolves which held asset a pair symbol belongs to. A candidate
// must be a literal prefix of the symbol whose remainder is one of the
// known quote assets; requiring a recognized quote disambiguates assets
// that are prefixes of each other. If several candidates still qualify,
// the longest base asset wins.
func ownerOf(symbol string, held []string, quotes []string) (asset, unit string, ok bool) {
	for _, b := range held {
		if !strings.HasPrefix(symbol, b) {
			continue
		}
		rest := symbol[len(b):]
		if !isQuote(rest, quotes) {
			continue
		}
		if len(b) > len(asset) {
			asset, unit = b, rest
		}
	}
	return asset, unit, asset != ""
}

func isQuote(s string, quotes []string) bool {
	for _, q := range quotes {
		if s == q {
			return true
		}
	}
	return false
}
