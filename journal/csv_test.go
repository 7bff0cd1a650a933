package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/journal/trade"
)

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 8, 3, 14, 30, 0, 0, time.UTC)

	trades := []trade.Trade{
		{
			ID:          "T1",
			Date:        date,
			Symbol:      "ES",
			Notes:       "breakout, held too long",
			RiskType:    trade.RiskPercent,
			RiskValue:   1,
			Account:     trade.AccountReal,
			ResultType:  trade.ResultR,
			ResultValue: -0.6,
			CreatedAt:   created,
		},
		{
			ID:          "T2",
			Date:        date.AddDate(0, 0, 1),
			RiskType:    trade.RiskFixed,
			RiskValue:   150.25,
			Account:     trade.AccountBacktest,
			ResultType:  trade.ResultMoney,
			ResultValue: 300.5,
			CreatedAt:   created.Add(time.Hour),
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, trades))

	got, err := ImportCSV(&buf, created)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	assert.Equal(t, "T1", got[0].ID)
	assert.True(t, got[0].Date.Equal(date))
	assert.Equal(t, "ES", got[0].Symbol)
	assert.Equal(t, "breakout, held too long", got[0].Notes)
	assert.InDelta(t, -0.6, got[0].ResultValue, 1e-9)
	assert.True(t, got[0].CreatedAt.Equal(created))

	assert.Equal(t, trade.RiskFixed, got[1].RiskType)
	assert.InDelta(t, 150.25, got[1].RiskValue, 1e-9)
	assert.Equal(t, trade.ResultMoney, got[1].ResultType)
	assert.InDelta(t, 300.5, got[1].ResultValue, 1e-9)
}

func TestCSVHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, nil))

	line, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, "trade_id,date,symbol,notes,risk_type,risk_value,account,result_type,result_value,created_at", line)
}

func TestImportCSVBadHeader(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader("a,b,c\n"), time.Now())
	assert.Error(t, err)
}

func TestImportCSVNormalizes(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	in := "trade_id,date,symbol,notes,risk_type,risk_value,account,result_type,result_value,created_at\n" +
		"T1,not-a-date,,,bogus,abc,BT,R_MULTIPLE,xyz,also-bad\n"

	got, err := ImportCSV(strings.NewReader(in), ref)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	// Unparseable fields degrade to normalized defaults.
	assert.True(t, got[0].Date.Equal(ref))
	assert.Equal(t, trade.RiskPercent, got[0].RiskType)
	assert.Equal(t, 0.0, got[0].RiskValue)
	assert.Equal(t, trade.AccountBacktest, got[0].Account)
	assert.Equal(t, trade.ResultR, got[0].ResultType)
	assert.Equal(t, 0.0, got[0].ResultValue)
}
