package cmd

import (
	"fmt"

	"github.com/rustyeddy/fxrisk/params"
	"github.com/rustyeddy/fxrisk/report"
	"github.com/rustyeddy/fxrisk/risk"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate lot size, margin and take-profit targets",
	Long: `Calculate the position size for one trade.

Fields not given on the command line come from --url (a share link), then from
the config defaults.

Examples:
  fxrisk calc --balance 1000000 --risk 2 --pair USDJPY --entry 150 --stop 20
  fxrisk calc --pair EURUSD --entry 1.1000 --stop 15 --rate 150 --short
  fxrisk calc --url 'https://fx.example.com/?currencyPair=EURJPY&entryPrice=165&stopLossPips=25'
  fxrisk calc --pair GBPJPY --entry 190 --stop 30 --format org --share`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

type calcFlags struct {
	balance  string
	risk     string
	pair     string
	entry    string
	stop     string
	leverage string
	rate     string
	short    bool
	url      string
	format   string
	share    bool
	baseURL  string
}

var calcOpts calcFlags

func init() {
	rootCmd.AddCommand(calcCmd)

	f := calcCmd.Flags()
	f.StringVarP(&calcOpts.balance, "balance", "b", "", "account balance in JPY")
	f.StringVarP(&calcOpts.risk, "risk", "r", "", "risk per trade in percent (2 = 2%)")
	f.StringVarP(&calcOpts.pair, "pair", "p", "", "currency pair, e.g. USDJPY")
	f.StringVarP(&calcOpts.entry, "entry", "e", "", "entry price")
	f.StringVarP(&calcOpts.stop, "stop", "s", "", "stop loss distance in pips")
	f.StringVarP(&calcOpts.leverage, "leverage", "l", "", "account leverage")
	f.StringVar(&calcOpts.rate, "rate", "", "quote/JPY conversion rate (required unless the pair is quoted in JPY)")
	f.BoolVar(&calcOpts.short, "short", false, "short position (targets below entry)")
	f.StringVar(&calcOpts.url, "url", "", "load parameters from a share link")
	f.StringVarP(&calcOpts.format, "format", "o", report.FormatText, "output format: text, csv, org or json")
	f.BoolVar(&calcOpts.share, "share", false, "include a share link in the output")
	f.StringVar(&calcOpts.baseURL, "base-url", "", "base URL for share links (defaults to server.base_url)")
}

// calcParams layers config defaults, the share link and explicit flags.
func calcParams(cmd *cobra.Command) (params.Params, error) {
	p := cfg.Params()

	if calcOpts.url != "" {
		fromURL, err := params.FromURL(calcOpts.url)
		if err != nil {
			return params.Params{}, err
		}
		p = params.Merge(p, fromURL)
	}

	flags := params.Params{
		AccountBalance: calcOpts.balance,
		RiskPercent:    calcOpts.risk,
		CurrencyPair:   calcOpts.pair,
		EntryPrice:     calcOpts.entry,
		StopLossPips:   calcOpts.stop,
		Leverage:       calcOpts.leverage,
		ConversionRate: calcOpts.rate,
	}
	if cmd.Flags().Changed("short") {
		flags.IsShort = fmt.Sprint(calcOpts.short)
	}
	return params.Merge(p, flags), nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	p, err := calcParams(cmd)
	if err != nil {
		return err
	}

	in, err := params.Parse(p)
	if err != nil {
		return err
	}

	res, err := risk.Calculate(in)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	rep := report.New(cfg.Policy, in, res)
	if calcOpts.share {
		base := calcOpts.baseURL
		if base == "" {
			base = cfg.Server.BaseURL
		}
		if base == "" {
			base = "http://localhost" + cfg.Server.Addr + "/"
		}
		if rep.ShareURL, err = params.ShareURL(base, params.FromInput(in)); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("id", rep.ID).
		Str("pair", in.Pair).
		Str("lot", res.RecommendedLot.StringFixed(2)).
		Int64("units", res.Units).
		Bool("allowed", rep.Decision.Allowed).
		Msg("sized position")

	return report.Write(cmd.OutOrStdout(), calcOpts.format, rep)
}
