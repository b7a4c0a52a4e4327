package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MissingPriceError reports a held asset that has no price against the
// reference quote asset. The valuation never treats a missing price as
// zero; the caller decides how to present the failure.
type MissingPriceError struct {
	Asset string
	Pair  string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("no price for asset %s: pair %s is not quoted", e.Asset, e.Pair)
}

// Line is the valuation of one held asset in the reference quote asset.
type Line struct {
	Asset  string
	Free   decimal.Decimal
	Locked decimal.Decimal
	Price  decimal.Decimal
	Value  decimal.Decimal
}

// Report is the portfolio valuation for one snapshot. Total sums the
// values of the included lines only.
type Report struct {
	Quote string
	Total decimal.Decimal
	Lines []Line
}

// Value prices every held balance against the quote asset and drops lines
// whose value is at or below dustValue. The quote asset itself is always
// valued at 1.0 regardless of the index contents; every other asset is
// looked up as asset+quote. Lines come out sorted by asset.
func Value(held map[string]Balance, idx PriceIndex, quote string, dustValue decimal.Decimal) (Report, error) {
	rep := Report{Quote: quote}
	for _, asset := range Assets(held) {
		b := held[asset]
		price := decimal.NewFromInt(1)
		if asset != quote {
			p, ok := idx.Price(asset + quote)
			if !ok {
				return Report{}, &MissingPriceError{Asset: asset, Pair: asset + quote}
			}
			price = p
		}
		value := price.Mul(b.Free.Add(b.Locked))
		if value.LessThanOrEqual(dustValue) {
			continue
		}
		rep.Total = rep.Total.Add(value)
		rep.Lines = append(rep.Lines, Line{
			Asset:  asset,
			Free:   b.Free,
			Locked: b.Locked,
			Price:  price,
			Value:  value,
		})
	}
	return rep, nil
}
