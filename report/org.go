package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/fxrisk/format"
	"github.com/rustyeddy/fxrisk/pkg/id"
)

// FormatOrgBlock renders a Report as an Org-mode block for pasting into a trading
// journal. Structured facts go into the PROPERTIES drawer; the Plan section is left
// for notes.
func FormatOrgBlock(r Report) string {
	in, res, pair := r.Input, r.Result, r.Input.Pair
	side := "long"
	if in.Short {
		side = "short"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Sizing: %s %s (%s)\n", pair, side, id.Short(r.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", r.ID))
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", r.CreatedAt.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", pair))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", side))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %s\n", format.Price(pair, in.EntryPrice)))
	b.WriteString(fmt.Sprintf(":STOP_PRICE: %s\n", format.Price(pair, res.StopPrice)))
	b.WriteString(fmt.Sprintf(":STOP_PIPS: %s\n", in.StopLossPips))
	b.WriteString(fmt.Sprintf(":LOTS: %s\n", format.Lot(res.RecommendedLot)))
	b.WriteString(fmt.Sprintf(":UNITS: %d\n", res.Units))
	b.WriteString(fmt.Sprintf(":RISK_JPY: %s\n", res.AllowableLoss.StringFixed(0)))
	b.WriteString(fmt.Sprintf(":MARGIN_JPY: %s\n", res.RequiredMargin.StringFixed(0)))
	b.WriteString(fmt.Sprintf(":TP1: %s\n", format.Price(pair, res.TP1)))
	b.WriteString(fmt.Sprintf(":TP15: %s\n", format.Price(pair, res.TP15)))
	b.WriteString(fmt.Sprintf(":TP2: %s\n", format.Price(pair, res.TP2)))
	b.WriteString(":END:\n")
	if r.ShareURL != "" {
		b.WriteString(fmt.Sprintf("[[%s][share link]]\n", r.ShareURL))
	}
	b.WriteString("\n*** Plan\n- \n")

	return b.String()
}
