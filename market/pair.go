package market

import (
	"strings"

	"github.com/shopspring/decimal"
)

// JPY is the account currency.
const JPY = "JPY"

var (
	pipJPY   = decimal.New(1, -2) // 0.01
	pipOther = decimal.New(1, -4) // 0.0001
)

// Pair is the classification of a 6 character pair code such as "EURUSD".
type Pair struct {
	Code       string
	Base       string
	Quote      string
	PipSize    decimal.Decimal
	QuoteIsJPY bool
}

// Classify splits code into base and quote currencies and derives the pip size.
//
// The pip size is 0.01 whenever the code contains "JPY" anywhere, not only in the
// quote position. For every pair in the catalogue this agrees with a quote based
// check. Malformed codes are not rejected; short input yields short fields.
func Classify(code string) Pair {
	p := Pair{
		Code:  code,
		Base:  BaseCcy(code),
		Quote: QuoteCcy(code),
	}
	p.QuoteIsJPY = p.Quote == JPY
	p.PipSize = PipSize(code)
	return p
}

// HasJPY reports whether JPY appears anywhere in the pair code.
func (p Pair) HasJPY() bool {
	return strings.Contains(p.Code, JPY)
}

// PipSize returns the pip size for a pair code.
func PipSize(code string) decimal.Decimal {
	if strings.Contains(code, JPY) {
		return pipJPY
	}
	return pipOther
}

// BaseCcy returns the first three characters of code.
func BaseCcy(code string) string {
	return clamp(code, 0, 3)
}

// QuoteCcy returns characters 3..6 of code.
func QuoteCcy(code string) string {
	return clamp(code, 3, 6)
}

func clamp(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
