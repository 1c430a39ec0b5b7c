// Package report renders sizing results as text, CSV, org-mode or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/fxrisk/format"
	"github.com/rustyeddy/fxrisk/pkg/id"
	"github.com/rustyeddy/fxrisk/risk"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatOrg  = "org"
	FormatJSON = "json"
)

// Report is one calculation snapshot. Reports are rendered, never stored.
type Report struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Input     risk.Input    `json:"input"`
	Result    risk.Result   `json:"result"`
	Decision  risk.Decision `json:"decision"`
	ShareURL  string        `json:"share_url,omitempty"`
}

// New builds a report for in/res, evaluating res against p.
func New(p risk.Policy, in risk.Input, res risk.Result) Report {
	now := time.Now().UTC()
	return Report{
		ID:        id.At(now),
		CreatedAt: now,
		Input:     in,
		Result:    res,
		Decision:  risk.Evaluate(p, in, res),
	}
}

// Write renders r to w in the named format.
func Write(w io.Writer, formatName string, r Report) error {
	switch formatName {
	case FormatText, "":
		return WriteText(w, r)
	case FormatCSV:
		return WriteCSV(w, []Report{r})
	case FormatOrg:
		_, err := io.WriteString(w, FormatOrgBlock(r)+"\n")
		return err
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q (want text, csv, org or json)", formatName)
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes a human readable summary.
func WriteText(w io.Writer, r Report) error {
	in, res, pair := r.Input, r.Result, r.Input.Pair
	side := "LONG"
	if in.Short {
		side = "SHORT"
	}

	ew := &errWriter{w: w}
	ew.printf("%s %s  (%s)\n", pair, side, id.Short(r.ID))
	ew.printf("  Account balance : %s\n", format.Currency(in.AccountBalance))
	ew.printf("  Risk            : %s\n", format.Percent(in.RiskPercent))
	ew.printf("  Entry / stop    : %s / %s (%s pips)\n",
		format.Price(pair, in.EntryPrice), format.Price(pair, res.StopPrice), in.StopLossPips)
	ew.printf("\n")
	ew.printf("  Allowable loss  : %s\n", format.Currency(res.AllowableLoss))
	ew.printf("  Pip value / lot : %s\n", format.Currency(res.PipValue))
	ew.printf("  Recommended lot : %s (%s units)\n", format.Lot(res.RecommendedLot), format.Units(res.Units))
	ew.printf("  Required margin : %s (leverage %sx)\n", format.Currency(res.RequiredMargin), in.Leverage)
	ew.printf("\n")
	ew.printf("  TP 1.0x         : %s\n", format.Price(pair, res.TP1))
	ew.printf("  TP 1.5x         : %s\n", format.Price(pair, res.TP15))
	ew.printf("  TP 2.0x         : %s\n", format.Price(pair, res.TP2))

	if len(r.Decision.Violations) > 0 {
		ew.printf("\n  Warnings:\n")
		for _, v := range r.Decision.Violations {
			ew.printf("    - [%s] %s\n", v.Code, v.Msg)
		}
	}
	if r.ShareURL != "" {
		ew.printf("\n  Share: %s\n", r.ShareURL)
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(f string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, f, args...)
}
