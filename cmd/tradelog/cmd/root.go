package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/config"
	"github.com/rustyeddy/journal/journal"
	"github.com/rustyeddy/journal/trade"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal with a deterministic calculation engine",
	Long: `Tradelog keeps a personal trading journal and derives everything else
from it:

  - A chronologically ordered ledger with running balance
  - Performance metrics (win rate, expectancy, profit factor, drawdown)
  - Daily risk-rule compliance summaries
  - Forward balance projections (deterministic or simulated)

Trades live in a local SQLite database; settings live in a YAML config.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var (
	cfgPath     string
	accountFlag string
	verbose     bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "./journal.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&accountFlag, "account", "a", "real", "account view (real or backtest)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig reads the config file, falling back to defaults when the file
// does not exist yet.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.WithField("path", cfgPath).Debug("config not found, using defaults")
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

func openStore(cfg *config.Config) (journal.Store, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func account() (trade.Account, error) {
	switch strings.ToLower(accountFlag) {
	case "real":
		return trade.AccountReal, nil
	case "backtest", "bt":
		return trade.AccountBacktest, nil
	default:
		return "", fmt.Errorf("unknown account %q (want real or backtest)", accountFlag)
	}
}

// accountView resolves the account scope: the store, the trades filtered
// to the account, and the settings with that account's starting balance.
func accountView() (journal.Store, []trade.Trade, trade.Settings, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, trade.Settings{}, nil, err
	}
	acct, err := account()
	if err != nil {
		return nil, nil, trade.Settings{}, nil, err
	}
	j, err := openStore(cfg)
	if err != nil {
		return nil, nil, trade.Settings{}, nil, err
	}
	trades, err := j.ListTrades(acct)
	if err != nil {
		j.Close()
		return nil, nil, trade.Settings{}, nil, fmt.Errorf("list trades: %w", err)
	}
	return j, trades, cfg.Settings(acct), cfg, nil
}
