package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/fxrisk/config"
	"github.com/rustyeddy/fxrisk/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fxrisk",
	Short: "FX position sizing and risk calculator for JPY accounts",
	Long: `fxrisk sizes a single FX position before entry.

From an account balance, a risk percentage, an entry price and a stop distance in
pips it computes:
  - the allowable loss and the JPY value of one pip
  - the recommended lot size (rounded down to 0.01 lot)
  - the required margin at your leverage
  - take-profit targets at 1.0x, 1.5x and 2.0x the stop distance

Pairs not quoted in JPY need a quote/JPY conversion rate (--rate).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgPath  string
	envFile  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML or JSON); defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with FXRISK_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(config.LoadOptions{
		Path:     cfgPath,
		EnvFile:  envFile,
		LogLevel: logLevel,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg = c
	logger = logging.New(cfg.Log.Level, cfg.Log.Pretty, cmd.ErrOrStderr())
	return nil
}
