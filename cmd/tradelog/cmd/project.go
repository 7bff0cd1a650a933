package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/projection"
	"github.com/rustyeddy/journal/report"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the account balance forward",
	Long: `Project the account balance over a future horizon.

DETERMINISTIC walks the historical expectancy forward day by day.
DAILY_SIM runs randomized trials that respect the daily stop/take limits
and reports P10/P50/P90 balance bands.

Defaults come from the projection section of the config file.`,
	Args: cobra.NoArgs,
	RunE: runProject,
}

var (
	projectMethod string
	projectDays   int
	projectSims   int
	projectSeed   int64
)

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().StringVar(&projectMethod, "method", "", "DETERMINISTIC or DAILY_SIM (default from config)")
	projectCmd.Flags().IntVar(&projectDays, "days", -1, "horizon in days (default from config)")
	projectCmd.Flags().IntVar(&projectSims, "sims", -1, "simulation trials (default from config)")
	projectCmd.Flags().Int64Var(&projectSeed, "seed", 0, "random seed, 0 seeds from the clock")
}

func runProject(cmd *cobra.Command, args []string) error {
	j, trades, settings, cfg, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	ps := cfg.ProjectionSettings()
	if projectMethod != "" {
		ps.Method = projection.Method(projectMethod)
	}
	if projectDays >= 0 {
		ps.HorizonDays = projectDays
	}
	if projectSims >= 1 {
		ps.Simulations = projectSims
	}

	res := projection.Project(trades, settings, ps, projection.NewSource(projectSeed))
	report.PrintProjection(os.Stdout, res, settings)
	return nil
}
