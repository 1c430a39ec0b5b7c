package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "created_at", "pair", "side", "account_balance", "risk_percent",
	"entry_price", "stop_loss_pips", "leverage", "conversion_rate",
	"allowable_loss", "pip_value", "recommended_lot", "units", "required_margin",
	"stop_price", "tp1", "tp15", "tp2", "allowed",
}

// WriteCSV writes a header row followed by one row per report.
func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range reports {
		in, res := r.Input, r.Result
		side := "long"
		if in.Short {
			side = "short"
		}
		rate := ""
		if !in.ConversionRate.IsZero() {
			rate = in.ConversionRate.String()
		}
		if err := cw.Write([]string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			in.Pair,
			side,
			in.AccountBalance.String(),
			in.RiskPercent.String(),
			in.EntryPrice.String(),
			in.StopLossPips.String(),
			in.Leverage.String(),
			rate,
			res.AllowableLoss.String(),
			res.PipValue.String(),
			res.RecommendedLot.StringFixed(2),
			strconv.FormatInt(res.Units, 10),
			res.RequiredMargin.StringFixed(2),
			res.StopPrice.String(),
			res.TP1.String(),
			res.TP15.String(),
			res.TP2.String(),
			strconv.FormatBool(r.Decision.Allowed),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
