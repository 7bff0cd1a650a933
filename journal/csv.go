// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rustyeddy/journal/trade"
)

var csvHeader = []string{
	"trade_id", "date", "symbol", "notes",
	"risk_type", "risk_value", "account",
	"result_type", "result_value", "created_at",
}

// ExportCSV writes trades as CSV with a header row. Dates are day-granular
// (2006-01-02); created_at keeps full RFC3339 precision for the tie-break.
func ExportCSV(w io.Writer, trades []trade.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		rec := []string{
			t.ID,
			t.Date.Format("2006-01-02"),
			t.Symbol,
			t.Notes,
			string(t.RiskType),
			f(t.RiskValue),
			string(t.Account),
			string(t.ResultType),
			f(t.ResultValue),
			t.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportCSV reads trades previously written by ExportCSV. Every record is
// normalized with ref as the date fallback.
func ImportCSV(r io.Reader, ref time.Time) ([]trade.Trade, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	var out []trade.Trade
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := time.Parse("2006-01-02", rec[1])
		if err != nil {
			date = time.Time{}
		}
		created, err := time.Parse(time.RFC3339Nano, rec[9])
		if err != nil {
			created = time.Time{}
		}

		t := trade.Trade{
			ID:          rec[0],
			Date:        date,
			Symbol:      rec[2],
			Notes:       rec[3],
			RiskType:    trade.RiskType(rec[4]),
			RiskValue:   parseFloat(rec[5]),
			Account:     trade.Account(rec[6]),
			ResultType:  trade.ResultType(rec[7]),
			ResultValue: parseFloat(rec[8]),
			CreatedAt:   created,
		}
		out = append(out, Normalize(t, ref))
	}
	return out, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
