package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/journal/trade"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func testTrade(id string, date time.Time, account trade.Account, created time.Time) trade.Trade {
	return trade.Trade{
		ID:          id,
		Date:        date,
		Symbol:      "ES",
		Notes:       "test",
		RiskType:    trade.RiskPercent,
		RiskValue:   1,
		Account:     account,
		ResultType:  trade.ResultR,
		ResultValue: 2,
		CreatedAt:   created,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','settings')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["settings"])
}

func TestSQLiteTradeRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 8, 3, 14, 30, 0, 0, time.UTC)
	want := testTrade("T1", date, trade.AccountReal, created)

	assert.NoError(t, j.SaveTrade(want))

	got, err := j.ListTrades(trade.AccountReal)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	assert.Equal(t, want.ID, got[0].ID)
	assert.True(t, got[0].Date.Equal(date))
	assert.Equal(t, "ES", got[0].Symbol)
	assert.Equal(t, "test", got[0].Notes)
	assert.Equal(t, trade.RiskPercent, got[0].RiskType)
	assert.InDelta(t, 1.0, got[0].RiskValue, 1e-9)
	assert.Equal(t, trade.ResultR, got[0].ResultType)
	assert.InDelta(t, 2.0, got[0].ResultValue, 1e-9)
	assert.True(t, got[0].CreatedAt.Equal(created))
}

func TestSQLiteUpsert(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	tr := testTrade("T1", date, trade.AccountReal, date)
	assert.NoError(t, j.SaveTrade(tr))

	tr.ResultValue = -1
	assert.NoError(t, j.SaveTrade(tr))

	got, err := j.ListTrades(trade.AccountReal)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.InDelta(t, -1.0, got[0].ResultValue, 1e-9)
}

func TestSQLiteDelete(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, j.SaveTrade(testTrade("T1", date, trade.AccountReal, date)))

	assert.NoError(t, j.DeleteTrade("T1"))
	assert.Error(t, j.DeleteTrade("T1"))

	got, err := j.ListTrades("")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteAccountFilter(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, j.SaveTrade(testTrade("R1", date, trade.AccountReal, date)))
	assert.NoError(t, j.SaveTrade(testTrade("B1", date, trade.AccountBacktest, date)))

	re, err := j.ListTrades(trade.AccountReal)
	assert.NoError(t, err)
	assert.Len(t, re, 1)
	assert.Equal(t, "R1", re[0].ID)

	bt, err := j.ListTrades(trade.AccountBacktest)
	assert.NoError(t, err)
	assert.Len(t, bt, 1)
	assert.Equal(t, "B1", bt[0].ID)

	all, err := j.ListTrades("")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteListOrder(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	d1 := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)

	// Insert out of order; same-day ties sort by created_at.
	assert.NoError(t, j.SaveTrade(testTrade("C", d2, trade.AccountReal, d2.Add(time.Hour))))
	assert.NoError(t, j.SaveTrade(testTrade("B", d1, trade.AccountReal, d1.Add(2*time.Hour))))
	assert.NoError(t, j.SaveTrade(testTrade("A", d1, trade.AccountReal, d1.Add(time.Hour))))

	got, err := j.ListTrades(trade.AccountReal)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, "B", got[1].ID)
	assert.Equal(t, "C", got[2].ID)
}

func TestSQLiteSettings(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	_, found, err := j.LoadSettings()
	assert.NoError(t, err)
	assert.False(t, found)

	want := trade.Settings{
		StartingBalance:  10000,
		Currency:         "USD",
		DefaultRiskType:  trade.RiskPercent,
		DefaultRiskValue: 1,
		DailyStopR:       -1,
		DailyTakeR:       2,
		MaxTradesPerDay:  2,
		ReturnMode:       trade.ReturnOnStartingBalance,
	}
	assert.NoError(t, j.SaveSettings(want))

	got, found, err := j.LoadSettings()
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// Saving again overwrites the single row.
	want.StartingBalance = 20000
	assert.NoError(t, j.SaveSettings(want))
	got, _, err = j.LoadSettings()
	assert.NoError(t, err)
	assert.InDelta(t, 20000.0, got.StartingBalance, 1e-9)
}
