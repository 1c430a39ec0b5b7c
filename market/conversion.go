package market

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingConversionRate is returned when a pair quoted in a currency other
	// than JPY is converted without a positive quote->JPY rate.
	ErrMissingConversionRate = errors.New("conversion rate (quote/JPY) is required for non-JPY quoted pairs")

	// ErrInvalidLeverage is returned when margin is requested for leverage <= 0.
	ErrInvalidLeverage = errors.New("leverage must be positive")
)

// QuoteToJPYRate returns the multiplier that converts an amount in the pair's quote
// currency into JPY. It is 1 for JPY quoted pairs and convToJPY otherwise.
func QuoteToJPYRate(pair string, convToJPY decimal.Decimal) (decimal.Decimal, error) {
	if QuoteCcy(pair) == JPY {
		return decimal.NewFromInt(1), nil
	}
	if !convToJPY.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: %w", pair, ErrMissingConversionRate)
	}
	return convToJPY, nil
}

// NotionalInJPY returns the JPY value of units of the pair's base currency at entryPrice.
//
// For JPY quoted pairs entryPrice is already JPY per base unit. For every other pair the
// notional is units × entryPrice × convToJPY, whatever the base currency.
func NotionalInJPY(pair string, units int64, entryPrice, convToJPY decimal.Decimal) (decimal.Decimal, error) {
	rate, err := QuoteToJPYRate(pair, convToJPY)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(units).Mul(entryPrice).Mul(rate), nil
}

// MarginJPY returns the margin in JPY required to hold units at leverage.
func MarginJPY(pair string, units int64, entryPrice, leverage, convToJPY decimal.Decimal) (decimal.Decimal, error) {
	notional, err := NotionalInJPY(pair, units, entryPrice, convToJPY)
	if err != nil {
		return decimal.Zero, err
	}
	if !leverage.IsPositive() {
		return decimal.Zero, fmt.Errorf("margin %s: %w", pair, ErrInvalidLeverage)
	}
	return notional.Div(leverage), nil
}
