package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "JPY", cfg.Account.Currency)
	assert.Equal(t, 1_000_000.0, cfg.Account.Balance)
	assert.Equal(t, 2.0, cfg.Defaults.RiskPercent)
	assert.Equal(t, "USDJPY", cfg.Defaults.Pair)
	assert.Equal(t, 25.0, cfg.Defaults.Leverage)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "non JPY account",
			mutate:  func(c *Config) { c.Account.Currency = "USD" },
			wantErr: true,
			errMsg:  "account.currency must be JPY",
		},
		{
			name:    "negative balance",
			mutate:  func(c *Config) { c.Account.Balance = -1000 },
			wantErr: true,
			errMsg:  "account.balance must not be negative",
		},
		{
			name:    "invalid risk percent",
			mutate:  func(c *Config) { c.Defaults.RiskPercent = 150 },
			wantErr: true,
			errMsg:  "defaults.risk_percent must be between 0 and 100",
		},
		{
			name:    "unknown pair",
			mutate:  func(c *Config) { c.Defaults.Pair = "XAUUSD" },
			wantErr: true,
			errMsg:  "unknown pair",
		},
		{
			name:    "negative stop pips",
			mutate:  func(c *Config) { c.Defaults.StopPips = -10 },
			wantErr: true,
			errMsg:  "defaults.stop_pips must not be negative",
		},
		{
			name:    "negative policy",
			mutate:  func(c *Config) { c.Policy.MaxMarginPct = -1 },
			wantErr: true,
			errMsg:  "policy limits must not be negative",
		},
		{
			name:    "missing addr",
			mutate:  func(c *Config) { c.Server.Addr = "" },
			wantErr: true,
			errMsg:  "server.addr is required",
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *Config) { c.Server.Burst = 0 },
			wantErr: true,
			errMsg:  "server.burst must be positive",
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Server.Timeout = "soon" },
			wantErr: true,
			errMsg:  "server.timeout",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "unknown log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Account.Balance = 500_000
			cfg.Defaults.Pair = "EURUSD"
			cfg.Policy.MaxRiskPct = 3
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Account, loaded.Account)
			assert.Equal(t, cfg.Defaults, loaded.Defaults)
			assert.Equal(t, cfg.Policy, loaded.Policy)
			assert.Equal(t, cfg.Server, loaded.Server)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  balance: 300000\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 300_000.0, cfg.Account.Balance)
	assert.Equal(t, "JPY", cfg.Account.Currency)
	assert.Equal(t, 25.0, cfg.Defaults.Leverage)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv("FXRISK_ACCOUNT_BALANCE", "2500000")
	t.Setenv("FXRISK_DEFAULTS_PAIR", "GBPJPY")
	t.Setenv("FXRISK_DEFAULTS_RISK_PERCENT", "1.5")
	t.Setenv("FXRISK_POLICY_MAX_RISK_PCT", "3")
	t.Setenv("FXRISK_SERVER_ADDR", ":9090")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2_500_000.0, cfg.Account.Balance)
	assert.Equal(t, "GBPJPY", cfg.Defaults.Pair)
	assert.Equal(t, 1.5, cfg.Defaults.RiskPercent)
	assert.Equal(t, 3.0, cfg.Policy.MaxRiskPct)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	t.Setenv("FXRISK_DEFAULTS_PAIR", "XAUUSD")
	_, err = Load(LoadOptions{})
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	noEnv := filepath.Join(dir, "none.env")

	path := filepath.Join(dir, "fxrisk.yaml")
	c := Default()
	c.Defaults.Pair = "EURJPY"
	require.NoError(t, c.SaveToFile(path))

	cfg, err := Load(LoadOptions{Path: path, EnvFile: noEnv, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "EURJPY", cfg.Defaults.Pair)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(LoadOptions{EnvFile: noEnv, LogLevel: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")

	_, err = Load(LoadOptions{Path: filepath.Join(dir, "missing.yaml"), EnvFile: noEnv})
	assert.Error(t, err)
}

func TestApplyEnvDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FXRISK_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("FXRISK_LOG_LEVEL") })

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(path))
	assert.Equal(t, "debug", cfg.Log.Level)

	// A missing dotenv file is not an error.
	require.NoError(t, Default().ApplyEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestParams(t *testing.T) {
	cfg := Default()
	p := cfg.Params()
	assert.Equal(t, "1000000", p.AccountBalance)
	assert.Equal(t, "2", p.RiskPercent)
	assert.Equal(t, "USDJPY", p.CurrencyPair)
	assert.Equal(t, "25", p.Leverage)
	assert.Empty(t, p.StopLossPips)
	assert.Empty(t, p.EntryPrice)
}

func TestServerTimeout(t *testing.T) {
	tests := []struct {
		timeout  string
		expected string
		wantErr  bool
	}{
		{"5s", "5s", false},
		{"250ms", "250ms", false},
		{"", "0s", false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			d, err := ServerConfig{Timeout: tt.timeout}.TimeoutDuration()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d.String())
			}
		})
	}
}
