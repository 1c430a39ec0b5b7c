package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rustyeddy/fxrisk/market"
	"github.com/rustyeddy/fxrisk/params"
	"github.com/rustyeddy/fxrisk/risk"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FXRISK_ACCOUNT_BALANCE.
const EnvPrefix = "FXRISK"

// Config represents the complete calculator configuration
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Policy   risk.Policy    `json:"policy" yaml:"policy"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// AccountConfig describes the trading account
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// DefaultsConfig pre-fills calculator fields that were not given explicitly
type DefaultsConfig struct {
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent" split_words:"true"` // 2 = 2%
	Pair        string  `json:"pair" yaml:"pair"`
	Leverage    float64 `json:"leverage" yaml:"leverage"`
	StopPips    float64 `json:"stop_pips,omitempty" yaml:"stop_pips,omitempty" split_words:"true"`
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr      string  `json:"addr" yaml:"addr"`
	BaseURL   string  `json:"base_url,omitempty" yaml:"base_url,omitempty" split_words:"true"`
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" split_words:"true"` // requests per second
	Burst     int     `json:"burst" yaml:"burst"`
	Timeout   string  `json:"timeout" yaml:"timeout"` // e.g. "5s"
}

// LogConfig selects log level and console output
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// TimeoutDuration converts the timeout string to time.Duration
func (s ServerConfig) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}

// Params returns the configured defaults as raw calculator parameters.
func (c *Config) Params() params.Params {
	p := params.Params{
		AccountBalance: formatFloat(c.Account.Balance),
		RiskPercent:    formatFloat(c.Defaults.RiskPercent),
		CurrencyPair:   c.Defaults.Pair,
		Leverage:       formatFloat(c.Defaults.Leverage),
		StopLossPips:   formatFloat(c.Defaults.StopPips),
	}
	return p
}

func formatFloat(x float64) string {
	if x == 0 {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	Path     string // config file; defaults are used when empty
	EnvFile  string // dotenv file, ".env" when empty
	LogLevel string // overrides log.level when set
}

// Load reads the config file (or the defaults), applies dotenv and FXRISK_*
// overrides, then the log level override, and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()
	if opts.Path != "" {
		var err error
		if cfg, err = readFile(opts.Path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(opts.EnvFile); err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// ApplyEnv loads dotenv (if present; ".env" when empty) and then overrides fields
// from FXRISK_* environment variables.
func (c *Config) ApplyEnv(dotenv string) error {
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenv, err)
	}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency != market.JPY {
		return fmt.Errorf("account.currency must be JPY")
	}
	if c.Account.Balance < 0 {
		return fmt.Errorf("account.balance must not be negative")
	}
	if c.Defaults.RiskPercent < 0 || c.Defaults.RiskPercent > 100 {
		return fmt.Errorf("defaults.risk_percent must be between 0 and 100")
	}
	if c.Defaults.Pair != "" && !market.IsSupported(c.Defaults.Pair) {
		return fmt.Errorf("unknown pair: %s", c.Defaults.Pair)
	}
	if c.Defaults.Leverage < 0 {
		return fmt.Errorf("defaults.leverage must not be negative")
	}
	if c.Defaults.StopPips < 0 {
		return fmt.Errorf("defaults.stop_pips must not be negative")
	}
	if c.Policy.MaxRiskPct < 0 || c.Policy.MaxMarginPct < 0 || c.Policy.MinLot < 0 {
		return fmt.Errorf("policy limits must not be negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 {
		return fmt.Errorf("server rate_limit and burst must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.Burst == 0 {
		return fmt.Errorf("server.burst must be positive when rate_limit is set")
	}
	if _, err := c.Server.TimeoutDuration(); err != nil {
		return fmt.Errorf("server.timeout: %w", err)
	}
	switch c.Log.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("unknown log.level: %s", c.Log.Level)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: market.JPY,
			Balance:  1_000_000,
		},
		Defaults: DefaultsConfig{
			RiskPercent: 2,
			Pair:        params.DefaultPair,
			Leverage:    25,
		},
		Policy: risk.DefaultPolicy(),
		Server: ServerConfig{
			Addr:      ":8080",
			RateLimit: 20,
			Burst:     40,
			Timeout:   "5s",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
