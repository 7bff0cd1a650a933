package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
)

var showCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show a trade as an Org-mode journal block",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var rmCmd = &cobra.Command{
	Use:   "rm <trade-id>",
	Short: "Delete a trade from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rmCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades("")
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	for _, t := range trades {
		if t.ID == args[0] {
			fmt.Println(journal.FormatTradeOrg(t))
			return nil
		}
	}
	return fmt.Errorf("trade %q not found", args[0])
}

func runRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted trade %s\n", args[0])
	return nil
}
