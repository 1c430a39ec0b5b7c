package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rustyeddy/fxrisk/risk"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks parameter validation failures.
var ErrInvalidInput = errors.New("invalid input")

// FieldError reports which parameter failed validation.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

func fieldErr(field, msg string) error {
	return &FieldError{Field: field, Msg: msg}
}

// Parse validates p and converts it into a risk.Input. Defaults are applied to the
// pair and leverage first.
func Parse(p Params) (risk.Input, error) {
	p = WithDefaults(p)

	var (
		in  risk.Input
		err error
	)

	in.Pair = strings.ToUpper(strings.TrimSpace(p.CurrencyPair))
	if !validPair(in.Pair) {
		return risk.Input{}, fieldErr("currencyPair", "must be two 3-letter currency codes, e.g. USDJPY")
	}

	if in.AccountBalance, err = positive(p.AccountBalance); err != nil {
		return risk.Input{}, fieldErr("accountBalance", "enter a positive account balance")
	}

	in.RiskPercent, err = positive(p.RiskPercent)
	if err != nil || in.RiskPercent.GreaterThan(decimal.NewFromInt(100)) {
		return risk.Input{}, fieldErr("riskPercent", "risk must be greater than 0 and at most 100%")
	}

	if in.EntryPrice, err = positive(p.EntryPrice); err != nil {
		return risk.Input{}, fieldErr("entryPrice", "enter a positive entry price")
	}

	if in.StopLossPips, err = positive(p.StopLossPips); err != nil {
		return risk.Input{}, fieldErr("stopLossPips", "enter a positive stop loss in pips")
	}

	if in.Leverage, err = positive(p.Leverage); err != nil {
		return risk.Input{}, fieldErr("leverage", "enter a positive leverage")
	}

	if strings.TrimSpace(p.ConversionRate) != "" || !strings.HasSuffix(in.Pair, "JPY") {
		if in.ConversionRate, err = positive(p.ConversionRate); err != nil {
			return risk.Input{}, fieldErr("conversionRate", "enter a positive quote/JPY conversion rate")
		}
	}

	in.Short = strings.EqualFold(strings.TrimSpace(p.IsShort), "true")
	return in, nil
}

func positive(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if !v.IsPositive() {
		return decimal.Zero, errors.New("not positive")
	}
	return v, nil
}

func validPair(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
