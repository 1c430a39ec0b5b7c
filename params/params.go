// Package params converts between raw string parameters (form fields, query strings,
// share links) and validated risk.Input values.
package params

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
	"github.com/rustyeddy/fxrisk/risk"
)

// Defaults applied to empty fields by WithDefaults.
const (
	DefaultPair     = "USDJPY"
	DefaultLeverage = "25"
)

// Params holds the raw, unparsed calculator fields. Field names match the query keys
// of a share link.
type Params struct {
	AccountBalance string `url:"accountBalance,omitempty" json:"accountBalance,omitempty" form:"accountBalance"`
	RiskPercent    string `url:"riskPercent,omitempty" json:"riskPercent,omitempty" form:"riskPercent"`
	CurrencyPair   string `url:"currencyPair,omitempty" json:"currencyPair,omitempty" form:"currencyPair"`
	EntryPrice     string `url:"entryPrice,omitempty" json:"entryPrice,omitempty" form:"entryPrice"`
	StopLossPips   string `url:"stopLossPips,omitempty" json:"stopLossPips,omitempty" form:"stopLossPips"`
	Leverage       string `url:"leverage,omitempty" json:"leverage,omitempty" form:"leverage"`
	ConversionRate string `url:"conversionRate,omitempty" json:"conversionRate,omitempty" form:"conversionRate"`
	IsShort        string `url:"isShort,omitempty" json:"isShort,omitempty" form:"isShort"`
}

// Keys lists the query keys owned by Params.
var Keys = []string{
	"accountBalance", "riskPercent", "currencyPair", "entryPrice",
	"stopLossPips", "leverage", "conversionRate", "isShort",
}

// Encode returns the non-empty fields as url.Values.
func Encode(p Params) (url.Values, error) {
	v, err := query.Values(p)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	return v, nil
}

// Decode reads the known keys from v. Unknown keys are ignored.
func Decode(v url.Values) Params {
	return Params{
		AccountBalance: v.Get("accountBalance"),
		RiskPercent:    v.Get("riskPercent"),
		CurrencyPair:   v.Get("currencyPair"),
		EntryPrice:     v.Get("entryPrice"),
		StopLossPips:   v.Get("stopLossPips"),
		Leverage:       v.Get("leverage"),
		ConversionRate: v.Get("conversionRate"),
		IsShort:        v.Get("isShort"),
	}
}

// FromInput renders in back into raw parameters. A zero conversion rate is omitted.
func FromInput(in risk.Input) Params {
	p := Params{
		AccountBalance: in.AccountBalance.String(),
		RiskPercent:    in.RiskPercent.String(),
		CurrencyPair:   in.Pair,
		EntryPrice:     in.EntryPrice.String(),
		StopLossPips:   in.StopLossPips.String(),
		Leverage:       in.Leverage.String(),
		IsShort:        strconv.FormatBool(in.Short),
	}
	if !in.ConversionRate.IsZero() {
		p.ConversionRate = in.ConversionRate.String()
	}
	return p
}

// WithDefaults fills the pair and leverage when they are empty.
func WithDefaults(p Params) Params {
	if p.CurrencyPair == "" {
		p.CurrencyPair = DefaultPair
	}
	if p.Leverage == "" {
		p.Leverage = DefaultLeverage
	}
	return p
}

// Merge returns p with every non-empty field of over copied on top.
func Merge(p, over Params) Params {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&p.AccountBalance, over.AccountBalance)
	set(&p.RiskPercent, over.RiskPercent)
	set(&p.CurrencyPair, over.CurrencyPair)
	set(&p.EntryPrice, over.EntryPrice)
	set(&p.StopLossPips, over.StopLossPips)
	set(&p.Leverage, over.Leverage)
	set(&p.ConversionRate, over.ConversionRate)
	set(&p.IsShort, over.IsShort)
	return p
}

// ShareURL returns base with the parameters written into its query string. Other
// query keys on base are kept; keys owned by Params that are empty are removed.
func ShareURL(base string, p Params) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share url: %w", err)
	}
	enc, err := Encode(p)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for _, k := range Keys {
		q.Del(k)
		if val := enc.Get(k); val != "" {
			q.Set(k, val)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromURL parses a share link and decodes its parameters.
func FromURL(raw string) (Params, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("parse url: %w", err)
	}
	return Decode(u.Query()), nil
}
