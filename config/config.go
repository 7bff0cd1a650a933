package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/journal/projection"
	"github.com/rustyeddy/journal/trade"
)

// Config is the on-disk journal configuration.
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Rules      RulesConfig      `json:"rules" yaml:"rules"`
	Projection ProjectionConfig `json:"projection" yaml:"projection"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// AccountConfig holds the per-account starting balances and the default
// risk spec applied to trades that do not override it.
type AccountConfig struct {
	Currency         string  `json:"currency" yaml:"currency"`
	Balance          float64 `json:"balance" yaml:"balance"`
	BacktestBalance  float64 `json:"backtest_balance" yaml:"backtest_balance"`
	DefaultRiskType  string  `json:"default_risk_type" yaml:"default_risk_type"`
	DefaultRiskValue float64 `json:"default_risk_value" yaml:"default_risk_value"`
}

// RulesConfig holds the daily discipline thresholds.
type RulesConfig struct {
	DailyStopR      float64 `json:"daily_stop_r" yaml:"daily_stop_r"`
	DailyTakeR      float64 `json:"daily_take_r" yaml:"daily_take_r"`
	MaxTradesPerDay int     `json:"max_trades_per_day" yaml:"max_trades_per_day"`
	ReturnMode      string  `json:"return_mode" yaml:"return_mode"`
}

// ProjectionConfig holds the projection defaults; the CLI can override
// them per invocation.
type ProjectionConfig struct {
	Method              string  `json:"method" yaml:"method"`
	HorizonDays         int     `json:"horizon_days" yaml:"horizon_days"`
	Simulations         int     `json:"simulations" yaml:"simulations"`
	FallbackExpectancyR float64 `json:"fallback_expectancy_r,omitempty" yaml:"fallback_expectancy_r,omitempty"`
}

// JournalConfig locates the journal database.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LoadFromFile loads configuration from a file, YAML first with a JSON
// fallback, and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration as YAML, or JSON when the extension says
// so.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration against the documented ranges.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance < 0 {
		return fmt.Errorf("account.balance must be >= 0")
	}
	if c.Account.BacktestBalance < 0 {
		return fmt.Errorf("account.backtest_balance must be >= 0")
	}
	switch trade.RiskType(c.Account.DefaultRiskType) {
	case trade.RiskPercent, trade.RiskFixed:
	default:
		return fmt.Errorf("account.default_risk_type must be PERCENT or FIXED")
	}
	if c.Account.DefaultRiskValue < 0 {
		return fmt.Errorf("account.default_risk_value must be >= 0")
	}
	if c.Rules.DailyStopR > 0 {
		return fmt.Errorf("rules.daily_stop_r must be <= 0")
	}
	if c.Rules.DailyTakeR < 0 {
		return fmt.Errorf("rules.daily_take_r must be >= 0")
	}
	if c.Rules.MaxTradesPerDay < 1 {
		return fmt.Errorf("rules.max_trades_per_day must be >= 1")
	}
	switch trade.ReturnMode(c.Rules.ReturnMode) {
	case trade.ReturnOnStartingBalance, trade.ReturnOnPrevBalance:
	default:
		return fmt.Errorf("rules.return_mode must be ON_STARTING_BALANCE or ON_PREV_BALANCE")
	}
	switch projection.Method(c.Projection.Method) {
	case projection.Deterministic, projection.DailySim:
	default:
		return fmt.Errorf("projection.method must be DETERMINISTIC or DAILY_SIM")
	}
	if c.Projection.HorizonDays < 0 {
		return fmt.Errorf("projection.horizon_days must be >= 0")
	}
	if c.Projection.Simulations < 1 {
		return fmt.Errorf("projection.simulations must be >= 1")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	return nil
}

// Settings resolves the engine settings for one account view. The backtest
// account gets its own starting balance; everything else is shared.
func (c *Config) Settings(account trade.Account) trade.Settings {
	balance := c.Account.Balance
	if account == trade.AccountBacktest {
		balance = c.Account.BacktestBalance
	}
	return trade.Settings{
		StartingBalance:  balance,
		Currency:         c.Account.Currency,
		DefaultRiskType:  trade.RiskType(c.Account.DefaultRiskType),
		DefaultRiskValue: c.Account.DefaultRiskValue,
		DailyStopR:       c.Rules.DailyStopR,
		DailyTakeR:       c.Rules.DailyTakeR,
		MaxTradesPerDay:  c.Rules.MaxTradesPerDay,
		ReturnMode:       trade.ReturnMode(c.Rules.ReturnMode),
	}
}

// ProjectionSettings resolves the projection defaults.
func (c *Config) ProjectionSettings() projection.Settings {
	return projection.Settings{
		Method:              projection.Method(c.Projection.Method),
		HorizonDays:         c.Projection.HorizonDays,
		Simulations:         c.Projection.Simulations,
		FallbackExpectancyR: c.Projection.FallbackExpectancyR,
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:         "USD",
			Balance:          10000,
			BacktestBalance:  10000,
			DefaultRiskType:  string(trade.RiskPercent),
			DefaultRiskValue: 1,
		},
		Rules: RulesConfig{
			DailyStopR:      -1,
			DailyTakeR:      2,
			MaxTradesPerDay: 1,
			ReturnMode:      string(trade.ReturnOnStartingBalance),
		},
		Projection: ProjectionConfig{
			Method:      string(projection.Deterministic),
			HorizonDays: 30,
			Simulations: 1000,
		},
		Journal: JournalConfig{
			DBPath: "./journal.sqlite",
		},
	}
}
