package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export the account's trades to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from CSV into the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	j, trades, _, _, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if err := journal.ExportCSV(f, trades); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	fmt.Printf("exported %d trades to %s\n", len(trades), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	trades, err := journal.ImportCSV(f, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("import csv: %w", err)
	}

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	for _, t := range trades {
		if err := j.SaveTrade(t); err != nil {
			return fmt.Errorf("save trade %s: %w", t.ID, err)
		}
	}
	fmt.Printf("imported %d trades from %s\n", len(trades), args[0])
	return nil
}
