package journal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/journal/trade"
)

func TestNormalizeNumbers(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)

	got := Normalize(trade.Trade{
		ID:          "T1",
		Date:        ref,
		RiskValue:   math.NaN(),
		ResultValue: math.Inf(1),
	}, ref)

	assert.Equal(t, 0.0, got.RiskValue)
	assert.Equal(t, 0.0, got.ResultValue)
}

func TestNormalizeNegativeRisk(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	got := Normalize(trade.Trade{ID: "T1", Date: ref, RiskValue: -5}, ref)
	assert.Equal(t, 0.0, got.RiskValue)
}

func TestNormalizeEnums(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   trade.Trade
		want trade.Trade
	}{
		{
			"unknown values default",
			trade.Trade{RiskType: "bogus", ResultType: "bogus", Account: "bogus"},
			trade.Trade{RiskType: trade.RiskPercent, ResultType: trade.ResultMoney, Account: trade.AccountReal},
		},
		{
			"legacy spellings",
			trade.Trade{RiskType: trade.RiskFixed, ResultType: "R_MULTIPLE", Account: "BT"},
			trade.Trade{RiskType: trade.RiskFixed, ResultType: trade.ResultR, Account: trade.AccountBacktest},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in, ref)
			assert.Equal(t, tt.want.RiskType, got.RiskType)
			assert.Equal(t, tt.want.ResultType, got.ResultType)
			assert.Equal(t, tt.want.Account, got.Account)
		})
	}
}

func TestNormalizeDates(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 8, 3, 15, 30, 0, 0, time.UTC)

	// Missing date falls back to the reference day; dates are truncated
	// to day granularity.
	got := Normalize(trade.Trade{ID: "T1"}, ref)
	assert.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, ref, got.CreatedAt)

	withTime := Normalize(trade.Trade{
		ID:        "T2",
		Date:      time.Date(2026, 8, 4, 23, 59, 0, 0, time.UTC),
		CreatedAt: ref,
	}, ref)
	assert.Equal(t, time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), withTime.Date)
}

func TestNormalizeSettings(t *testing.T) {
	t.Parallel()

	got := NormalizeSettings(trade.Settings{
		StartingBalance:  -100,
		DefaultRiskValue: math.NaN(),
		DailyStopR:       1.5, // wrong sign
		DailyTakeR:       -2,  // wrong sign
		MaxTradesPerDay:  0,
	})

	assert.Equal(t, 0.0, got.StartingBalance)
	assert.Equal(t, 0.0, got.DefaultRiskValue)
	assert.Equal(t, -1.5, got.DailyStopR)
	assert.Equal(t, 2.0, got.DailyTakeR)
	assert.Equal(t, 1, got.MaxTradesPerDay)
	assert.Equal(t, trade.RiskPercent, got.DefaultRiskType)
	assert.Equal(t, trade.ReturnOnStartingBalance, got.ReturnMode)
}
