package cmd

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rustyeddy/journal/ledger"
)

var plotCmd = &cobra.Command{
	Use:   "plot <out.png>",
	Short: "Render the balance curve as a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	j, trades, settings, _, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	rows := ledger.Build(trades, settings)
	if len(rows) == 0 {
		return fmt.Errorf("no trades to plot")
	}

	// X is the trade index rather than the date: with day-granular trades
	// the index reflects trading frequency better than a time axis.
	pts := make(plotter.XYs, len(rows)+1)
	pts[0].X, pts[0].Y = 0, rows[0].BalanceBefore
	for i, row := range rows {
		pts[i+1].X = float64(row.Index)
		pts[i+1].Y = row.BalanceAfter
	}

	p := plot.New()
	p.Title.Text = "Balance Curve"
	p.X.Label.Text = "Trade"
	p.Y.Label.Text = fmt.Sprintf("Balance (%s)", settings.Currency)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = color.RGBA{R: 0, G: 128, B: 255, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, args[0]); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
