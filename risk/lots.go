package risk

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Lot arithmetic is done in integer steps of 0.01 lot so unit counts never drift.
const (
	UnitsPerLot  = 100_000
	StepsPerLot  = 100
	UnitsPerStep = UnitsPerLot / StepsPerLot

	// MaxLotSteps is the largest step count whose unit count fits in an int64.
	MaxLotSteps = math.MaxInt64 / UnitsPerStep
)

// ErrInvalidRiskParameters is returned when the stop distance or pip value is not
// positive, which leaves the lot size undefined.
var ErrInvalidRiskParameters = errors.New("stop loss pips and pip value must be positive")

// ErrPositionTooLarge is returned when the sized position has more units than an
// int64 can hold.
var ErrPositionTooLarge = errors.New("position size exceeds representable units")

var (
	stepsPerLot = decimal.NewFromInt(StepsPerLot)
	maxLotSteps = decimal.NewFromInt(MaxLotSteps)
)

// LotSize is a risk derived lot count and its tradable quantization.
type LotSize struct {
	LotsRaw     decimal.Decimal `json:"lots_raw"`
	LotsRounded decimal.Decimal `json:"lots_rounded"`
	Units       int64           `json:"units"`
	LotSteps    int64           `json:"lot_steps"`
}

// ToLotSteps truncates lotsRaw to whole 0.01 lot steps. Negative input gives 0 and
// values past MaxLotSteps are capped there.
func ToLotSteps(lotsRaw decimal.Decimal) int64 {
	return clampSteps(lotsRaw.Mul(stepsPerLot).Floor())
}

func clampSteps(steps decimal.Decimal) int64 {
	switch {
	case steps.IsNegative():
		return 0
	case steps.GreaterThan(maxLotSteps):
		return MaxLotSteps
	}
	return steps.IntPart()
}

// FromLotSteps converts steps back to lots (22 -> 0.22).
func FromLotSteps(steps int64) decimal.Decimal {
	return decimal.New(steps, -2)
}

// UnitsForSteps returns the exact unit count for steps. steps must not exceed
// MaxLotSteps.
func UnitsForSteps(steps int64) int64 {
	return steps * UnitsPerStep
}

// CalculateLotAndUnits sizes a position so that a move of stopPips costs at most
// riskJPY. The lot is always rounded down; a zero result means no tradable lot.
// Steps are an exact integer quotient; LotsRaw is rounded and only for display.
func CalculateLotAndUnits(riskJPY, pipValuePerLotJPY, stopPips decimal.Decimal) (LotSize, error) {
	if !pipValuePerLotJPY.IsPositive() || !stopPips.IsPositive() {
		return LotSize{}, fmt.Errorf("pip value %s, stop %s pips: %w",
			pipValuePerLotJPY, stopPips, ErrInvalidRiskParameters)
	}

	denom := pipValuePerLotJPY.Mul(stopPips)
	q, _ := riskJPY.Mul(stepsPerLot).QuoRem(denom, 0)
	if q.GreaterThan(maxLotSteps) {
		return LotSize{}, fmt.Errorf("%s lot steps: %w", q, ErrPositionTooLarge)
	}
	// QuoRem truncates toward zero, which is the floor for the non-negative case.
	steps := clampSteps(q)
	raw := riskJPY.Div(denom)

	return LotSize{
		LotsRaw:     raw,
		LotsRounded: FromLotSteps(steps),
		Units:       UnitsForSteps(steps),
		LotSteps:    steps,
	}, nil
}
