package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
	"github.com/rustyeddy/journal/pkg/id"
	"github.com/rustyeddy/journal/trade"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a trade to the journal",
	Long: `Add a single trade to the journal.

The result is entered either in currency (--result-type MONEY) or as an
R-multiple (--result-type R). Risk defaults to the account's default risk
spec unless overridden with --risk-type/--risk-value.

Examples:
  tradelog add --symbol ES --result-type R --result -1
  tradelog add --date 2026-08-12 --risk-type FIXED --risk-value 50 --result-type MONEY --result 125.50`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate       string
	addSymbol     string
	addNotes      string
	addRiskType   string
	addRiskValue  float64
	addResultType string
	addResult     float64
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addSymbol, "symbol", "", "instrument symbol")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringVar(&addRiskType, "risk-type", "", "PERCENT or FIXED (default from config)")
	addCmd.Flags().Float64Var(&addRiskValue, "risk-value", -1, "risk magnitude (default from config)")
	addCmd.Flags().StringVar(&addResultType, "result-type", "R", "MONEY or R")
	addCmd.Flags().Float64Var(&addResult, "result", 0, "realized result, signed")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	acct, err := account()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	date := now
	if addDate != "" {
		date, err = time.Parse("2006-01-02", addDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	// Resolve the effective risk spec before storing: the engine always
	// receives resolved values.
	riskType := trade.RiskType(cfg.Account.DefaultRiskType)
	if addRiskType != "" {
		riskType = trade.RiskType(addRiskType)
	}
	riskValue := cfg.Account.DefaultRiskValue
	if addRiskValue >= 0 {
		riskValue = addRiskValue
	}

	t := journal.Normalize(trade.Trade{
		ID:          id.New(),
		Date:        date,
		Symbol:      addSymbol,
		Notes:       addNotes,
		RiskType:    riskType,
		RiskValue:   riskValue,
		Account:     acct,
		ResultType:  trade.ResultType(addResultType),
		ResultValue: addResult,
		CreatedAt:   now,
	}, now)

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.SaveTrade(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("added trade %s (%s %s)\n", t.ID, t.Date.Format("2006-01-02"), t.Account)
	return nil
}
