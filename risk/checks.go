package risk

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Decision is the outcome of Evaluate. Allowed is false when any limit is broken.
type Decision struct {
	Allowed    bool        `json:"allowed"`
	Violations []Violation `json:"violations,omitempty"`

	PlannedLoss    decimal.Decimal    `json:"planned_loss"`
	PlannedRiskPct decimal.Decimal    `json:"planned_risk_pct"`
	MarginPct      decimal.Decimal    `json:"margin_pct"`
	RR             [3]decimal.Decimal `json:"rr"`
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks a sizing result against p. It never alters the result.
func Evaluate(p Policy, in Input, res Result) Decision {
	d := Decision{Allowed: true}

	d.PlannedLoss = PlannedLoss(res.PipValue, res.LotSteps, in.StopLossPips)
	d.PlannedRiskPct = Pct(d.PlannedLoss, in.AccountBalance)
	d.MarginPct = Pct(res.RequiredMargin, in.AccountBalance)
	for i, tp := range []decimal.Decimal{res.TP1, res.TP15, res.TP2} {
		d.RR[i] = RR(in.EntryPrice, res.StopPrice, tp)
	}

	if res.LotSteps == 0 {
		d.add("NO_TRADABLE_LOT",
			fmt.Sprintf("allowable loss %s JPY is below one 0.01 lot at %s pips",
				res.AllowableLoss.StringFixed(0), in.StopLossPips))
		return d
	}

	if p.MinLot > 0 && res.RecommendedLot.LessThan(decimal.NewFromFloat(p.MinLot)) {
		d.add("BELOW_MIN_LOT",
			fmt.Sprintf("lot %s below broker minimum %.2f", res.RecommendedLot.StringFixed(2), p.MinLot))
	}

	if p.MaxRiskPct > 0 && d.PlannedRiskPct.GreaterThan(decimal.NewFromFloat(p.MaxRiskPct)) {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("planned risk %s%% exceeds max %.2f%%", d.PlannedRiskPct.StringFixed(2), p.MaxRiskPct))
	}

	if res.RequiredMargin.GreaterThan(in.AccountBalance) {
		d.add("MARGIN_EXCEEDS_BALANCE",
			fmt.Sprintf("required margin %s JPY exceeds balance %s JPY",
				res.RequiredMargin.StringFixed(0), in.AccountBalance.StringFixed(0)))
	} else if p.MaxMarginPct > 0 && d.MarginPct.GreaterThan(decimal.NewFromFloat(p.MaxMarginPct)) {
		d.add("MARGIN_TOO_HIGH",
			fmt.Sprintf("margin %s%% of balance exceeds max %.2f%%", d.MarginPct.StringFixed(2), p.MaxMarginPct))
	}

	return d
}
