package risk

import (
	"fmt"

	"github.com/rustyeddy/fxrisk/market"
	"github.com/shopspring/decimal"
)

// Input holds the parameters of one sizing request. Amounts are in JPY.
type Input struct {
	AccountBalance decimal.Decimal `json:"account_balance"`
	RiskPercent    decimal.Decimal `json:"risk_percent"` // 2 means 2%
	Pair           string          `json:"currency_pair"`
	EntryPrice     decimal.Decimal `json:"entry_price"`
	StopLossPips   decimal.Decimal `json:"stop_loss_pips"`
	Leverage       decimal.Decimal `json:"leverage"`
	// ConversionRate is the quote->JPY rate. Zero means not supplied.
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	Short          bool            `json:"is_short"`
}

// Result is the sizing outcome for an Input.
type Result struct {
	AllowableLoss  decimal.Decimal `json:"allowable_loss"`
	PipValue       decimal.Decimal `json:"pip_value"`
	LotsRaw        decimal.Decimal `json:"lots_raw"`
	RecommendedLot decimal.Decimal `json:"recommended_lot"`
	LotSteps       int64           `json:"lot_steps"`
	Units          int64           `json:"units"`
	RequiredMargin decimal.Decimal `json:"required_margin"`
	StopPrice      decimal.Decimal `json:"stop_price"`
	TP1            decimal.Decimal `json:"tp1"`
	TP15           decimal.Decimal `json:"tp15"`
	TP2            decimal.Decimal `json:"tp2"`
}

var (
	hundred     = decimal.NewFromInt(100)
	unitsPerLot = decimal.NewFromInt(UnitsPerLot)
	one         = decimal.NewFromInt(1)
	minusOne    = decimal.NewFromInt(-1)

	// TakeProfitMultiples are the reward:risk ratios of the take-profit ladder.
	TakeProfitMultiples = [3]decimal.Decimal{one, decimal.New(15, -1), decimal.NewFromInt(2)}
)

// AllowableLoss returns balance × riskPercent / 100.
func AllowableLoss(balance, riskPercent decimal.Decimal) decimal.Decimal {
	return balance.Mul(riskPercent).Div(hundred)
}

// PipValue returns the JPY value of one pip on one standard lot of pair.
func PipValue(pair string, convToJPY decimal.Decimal) (decimal.Decimal, error) {
	rate, err := market.QuoteToJPYRate(pair, convToJPY)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pip value: %w", err)
	}
	return market.PipSize(pair).Mul(unitsPerLot).Mul(rate), nil
}

// TakeProfit returns entry moved multiple × stopPips pips in the trade direction.
func TakeProfit(pair string, entry, stopPips decimal.Decimal, short bool, multiple decimal.Decimal) decimal.Decimal {
	dist := market.PipSize(pair).Mul(stopPips).Mul(multiple)
	return entry.Add(direction(short).Mul(dist))
}

// TakeProfitLadder returns the 1.0×, 1.5× and 2.0× targets.
func TakeProfitLadder(pair string, entry, stopPips decimal.Decimal, short bool) [3]decimal.Decimal {
	var out [3]decimal.Decimal
	for i, m := range TakeProfitMultiples {
		out[i] = TakeProfit(pair, entry, stopPips, short, m)
	}
	return out
}

// StopPrice returns the price stopPips away from entry against the trade.
func StopPrice(pair string, entry, stopPips decimal.Decimal, short bool) decimal.Decimal {
	return TakeProfit(pair, entry, stopPips, !short, one)
}

func direction(short bool) decimal.Decimal {
	if short {
		return minusOne
	}
	return one
}

// Calculate sizes a single position. It fails with market.ErrMissingConversionRate
// when a non-JPY quoted pair has no rate and with ErrInvalidRiskParameters when the
// stop distance is not positive. A zero RecommendedLot is a valid result.
func Calculate(in Input) (Result, error) {
	allowable := AllowableLoss(in.AccountBalance, in.RiskPercent)

	pipValue, err := PipValue(in.Pair, in.ConversionRate)
	if err != nil {
		return Result{}, err
	}

	lot, err := CalculateLotAndUnits(allowable, pipValue, in.StopLossPips)
	if err != nil {
		return Result{}, fmt.Errorf("lot size: %w", err)
	}

	margin, err := market.MarginJPY(in.Pair, lot.Units, in.EntryPrice, in.Leverage, in.ConversionRate)
	if err != nil {
		return Result{}, fmt.Errorf("required margin: %w", err)
	}

	tp := TakeProfitLadder(in.Pair, in.EntryPrice, in.StopLossPips, in.Short)

	return Result{
		AllowableLoss:  allowable,
		PipValue:       pipValue,
		LotsRaw:        lot.LotsRaw,
		RecommendedLot: lot.LotsRounded,
		LotSteps:       lot.LotSteps,
		Units:          lot.Units,
		RequiredMargin: margin,
		StopPrice:      StopPrice(in.Pair, in.EntryPrice, in.StopLossPips, in.Short),
		TP1:            tp[0],
		TP15:           tp[1],
		TP2:            tp[2],
	}, nil
}
