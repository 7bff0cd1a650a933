// Package daily groups a ledger by calendar day and classifies each day
// against the configured stop, take and trade-count limits. The
// classification is retrospective reporting; nothing here blocks trade
// entry.
package daily

import (
	"fmt"
	"sort"
	"time"

	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/trade"
)

// Status classifies one trading day against the daily rules.
type Status string

const (
	StatusOK            Status = "OK"
	StatusStopHit       Status = "STOP_HIT"
	StatusTakeHit       Status = "TAKE_HIT"
	StatusLimitExceeded Status = "LIMIT_EXCEEDED"
)

// Summary aggregates one calendar day of the ledger.
type Summary struct {
	Date   time.Time
	Trades int
	DayPnl float64
	DayR   float64
	Status Status
}

// Summarize returns one Summary per day present in the ledger, ordered by
// date ascending. Status precedence: trade-count limit first, then the
// daily stop, then the daily take.
func Summarize(rows []ledger.Row, settings trade.Settings) []Summary {
	byDay := make(map[time.Time]*Summary)
	for _, row := range rows {
		day := trade.Day(row.Date)
		s := byDay[day]
		if s == nil {
			s = &Summary{Date: day}
			byDay[day] = s
		}
		s.Trades++
		s.DayPnl = trade.Round2(s.DayPnl + row.Pnl)
		s.DayR += row.RMultiple
	}

	out := make([]Summary, 0, len(byDay))
	for _, s := range byDay {
		s.Status = classify(*s, settings)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ForDay returns the summary for one specific day, with ok reporting
// whether the ledger contains any trades on it. The reference day is
// passed in explicitly; this package never reads the clock.
func ForDay(rows []ledger.Row, settings trade.Settings, day time.Time) (Summary, bool) {
	day = trade.Day(day)
	for _, s := range Summarize(rows, settings) {
		if s.Date.Equal(day) {
			return s, true
		}
	}
	return Summary{}, false
}

// CheckLimits scans raw trades for days that exceed the configured
// per-day trade limit and returns advisory warnings. It operates on
// trades rather than ledger rows so it can run before a ledger exists.
func CheckLimits(trades []trade.Trade, settings trade.Settings) (bool, []string) {
	counts := make(map[time.Time]int)
	for _, t := range trades {
		counts[trade.Day(t.Date)]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var warnings []string
	for _, day := range days {
		if counts[day] > settings.MaxTradesPerDay {
			warnings = append(warnings, fmt.Sprintf(
				"day %s exceeds the maximum of %d trades (%d)",
				day.Format("2006-01-02"), settings.MaxTradesPerDay, counts[day]))
		}
	}
	return len(warnings) == 0, warnings
}

func classify(s Summary, settings trade.Settings) Status {
	switch {
	case s.Trades > settings.MaxTradesPerDay:
		return StatusLimitExceeded
	case s.DayR <= settings.DailyStopR:
		return StatusStopHit
	case s.DayR >= settings.DailyTakeR:
		return StatusTakeHit
	default:
		return StatusOK
	}
}
