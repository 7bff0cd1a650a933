package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/journal/projection"
	"github.com/rustyeddy/journal/trade"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing currency", func(c *Config) { c.Account.Currency = "" }},
		{"negative balance", func(c *Config) { c.Account.Balance = -1 }},
		{"bad risk type", func(c *Config) { c.Account.DefaultRiskType = "PIPS" }},
		{"positive stop", func(c *Config) { c.Rules.DailyStopR = 1 }},
		{"negative take", func(c *Config) { c.Rules.DailyTakeR = -1 }},
		{"zero max trades", func(c *Config) { c.Rules.MaxTradesPerDay = 0 }},
		{"bad return mode", func(c *Config) { c.Rules.ReturnMode = "ON_EQUITY" }},
		{"bad method", func(c *Config) { c.Projection.Method = "MONTE_CARLO_XL" }},
		{"negative horizon", func(c *Config) { c.Projection.HorizonDays = -1 }},
		{"zero sims", func(c *Config) { c.Projection.Simulations = 0 }},
		{"missing db path", func(c *Config) { c.Journal.DBPath = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.yaml")

	want := Default()
	want.Account.Balance = 25000
	want.Rules.MaxTradesPerDay = 3
	assert.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.json")

	want := Default()
	assert.NoError(t, want.SaveToFile(path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "{")

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettingsPerAccount(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Account.Balance = 10000
	cfg.Account.BacktestBalance = 500

	re := cfg.Settings(trade.AccountReal)
	assert.InDelta(t, 10000.0, re.StartingBalance, 1e-9)
	assert.Equal(t, trade.RiskPercent, re.DefaultRiskType)
	assert.Equal(t, trade.ReturnOnStartingBalance, re.ReturnMode)

	bt := cfg.Settings(trade.AccountBacktest)
	assert.InDelta(t, 500.0, bt.StartingBalance, 1e-9)
}

func TestProjectionSettings(t *testing.T) {
	t.Parallel()

	cfg := Default()
	ps := cfg.ProjectionSettings()

	assert.Equal(t, projection.Deterministic, ps.Method)
	assert.Equal(t, 30, ps.HorizonDays)
	assert.Equal(t, 1000, ps.Simulations)
	assert.Equal(t, 0.0, ps.FallbackExpectancyR)
}
