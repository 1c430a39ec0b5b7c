// Package format renders sizing values for display.
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Price shows 3 decimals for pairs containing JPY and 5 otherwise.
func Price(pair string, price decimal.Decimal) string {
	return price.StringFixed(PriceDecimals(pair))
}

func PriceDecimals(pair string) int32 {
	if strings.Contains(pair, "JPY") {
		return 3
	}
	return 5
}

// Currency formats a JPY amount with thousands separators and at most three
// fraction digits, trailing zeros dropped.
func Currency(amount decimal.Decimal) string {
	r := amount.Round(3)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}

	whole := r.Truncate(0)
	s := "¥" + sign + humanize.Comma(whole.IntPart())
	if frac := r.Sub(whole); !frac.IsZero() {
		s += strings.TrimPrefix(frac.String(), "0")
	}
	return s
}

// Lot formats a lot size with two decimals.
func Lot(lots decimal.Decimal) string {
	return lots.StringFixed(2)
}

// Units formats a unit count with thousands separators.
func Units(units int64) string {
	return humanize.Comma(units)
}

// Percent formats a percentage with two decimals.
func Percent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// Ratio formats a reward:risk ratio such as "1:1.5".
func Ratio(rr decimal.Decimal) string {
	return "1:" + rr.Round(2).String()
}
