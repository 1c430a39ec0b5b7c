package risk

import "github.com/shopspring/decimal"

// PlannedLoss is the JPY loss if the stop is hit with the quantized lot:
// pipValue × lots × stopPips.
func PlannedLoss(pipValuePerLot decimal.Decimal, lotSteps int64, stopPips decimal.Decimal) decimal.Decimal {
	return pipValuePerLot.Mul(FromLotSteps(lotSteps)).Mul(stopPips)
}

// RR returns reward/risk for a target, or zero when entry equals stop.
func RR(entry, stop, takeProfit decimal.Decimal) decimal.Decimal {
	risk := entry.Sub(stop).Abs()
	if risk.IsZero() {
		return decimal.Zero
	}
	return takeProfit.Sub(entry).Abs().Div(risk)
}

// Pct returns part as a percentage of whole. A non-positive whole yields zero.
func Pct(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
