package journal

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/rustyeddy/journal/trade"
)

// Normalize coerces a stored trade into the shape the calculation engine
// expects: finite numbers, known enum values, day-granular date. The
// engine documents these guarantees but does not re-check them, so every
// trade leaving the storage layer passes through here. ref supplies the
// date fallback for records missing one; the clock is never read.
func Normalize(t trade.Trade, ref time.Time) trade.Trade {
	t.RiskValue = trade.Finite(t.RiskValue)
	if t.RiskValue < 0 {
		t.RiskValue = 0
	}
	t.ResultValue = trade.Finite(t.ResultValue)

	switch t.RiskType {
	case trade.RiskPercent, trade.RiskFixed:
	default:
		t.RiskType = trade.RiskPercent
	}

	switch t.ResultType {
	case trade.ResultMoney, trade.ResultR:
	default:
		// Tolerate the legacy result-mode spellings.
		switch strings.ToUpper(string(t.ResultType)) {
		case "R_MULTIPLE":
			t.ResultType = trade.ResultR
		default:
			t.ResultType = trade.ResultMoney
		}
	}

	switch t.Account {
	case trade.AccountReal, trade.AccountBacktest:
	default:
		if strings.ToUpper(string(t.Account)) == "BT" {
			t.Account = trade.AccountBacktest
		} else {
			t.Account = trade.AccountReal
		}
	}

	if t.Date.IsZero() {
		log.WithField("trade", t.ID).Debug("trade without date, using reference day")
		t.Date = ref
	}
	t.Date = trade.Day(t.Date)

	if t.CreatedAt.IsZero() {
		t.CreatedAt = ref
	}

	return t
}

// NormalizeSettings clamps stored settings to the documented ranges.
func NormalizeSettings(s trade.Settings) trade.Settings {
	s.StartingBalance = trade.Finite(s.StartingBalance)
	if s.StartingBalance < 0 {
		s.StartingBalance = 0
	}
	s.DefaultRiskValue = trade.Finite(s.DefaultRiskValue)
	if s.DefaultRiskValue < 0 {
		s.DefaultRiskValue = 0
	}

	s.DailyStopR = trade.Finite(s.DailyStopR)
	if s.DailyStopR > 0 {
		s.DailyStopR = -s.DailyStopR
	}
	s.DailyTakeR = trade.Finite(s.DailyTakeR)
	if s.DailyTakeR < 0 {
		s.DailyTakeR = -s.DailyTakeR
	}
	if s.MaxTradesPerDay < 1 {
		s.MaxTradesPerDay = 1
	}

	switch s.DefaultRiskType {
	case trade.RiskPercent, trade.RiskFixed:
	default:
		s.DefaultRiskType = trade.RiskPercent
	}
	switch s.ReturnMode {
	case trade.ReturnOnStartingBalance, trade.ReturnOnPrevBalance:
	default:
		s.ReturnMode = trade.ReturnOnStartingBalance
	}

	return s
}
