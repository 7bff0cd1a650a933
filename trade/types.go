// Package trade holds the value types shared by the calculation engine:
// the trade record itself, the account settings that parameterize every
// calculation, and the small numeric helpers the engine uses to keep
// malformed input from propagating.
package trade

import "time"

// RiskType selects how a trade's RiskValue is interpreted.
type RiskType string

const (
	RiskPercent RiskType = "PERCENT" // RiskValue is percentage points of balance
	RiskFixed   RiskType = "FIXED"   // RiskValue is a currency amount
)

// ResultType selects which field carries the authoritative outcome of a
// trade. The other representation (currency PnL vs R-multiple) is always
// derived from it, never stored.
type ResultType string

const (
	ResultMoney ResultType = "MONEY"
	ResultR     ResultType = "R"
)

// Account partitions trades into independent views. The engine itself is
// account-agnostic; callers filter trades by account before building a
// ledger.
type Account string

const (
	AccountReal     Account = "REAL"
	AccountBacktest Account = "BACKTEST"
)

// ReturnMode selects the denominator for per-trade return percentages.
type ReturnMode string

const (
	ReturnOnStartingBalance ReturnMode = "ON_STARTING_BALANCE"
	ReturnOnPrevBalance     ReturnMode = "ON_PREV_BALANCE"
)

// Trade is a single journal entry as supplied by the storage layer. The
// engine treats it as immutable and does not validate its shape; the
// storage layer normalizes records before they get here.
type Trade struct {
	ID     string
	Date   time.Time // day granularity, UTC midnight
	Symbol string
	Notes  string

	// Effective risk spec. Default-vs-override resolution happens in the
	// caller; the engine always sees the resolved values.
	RiskType  RiskType
	RiskValue float64

	Account Account

	ResultType  ResultType
	ResultValue float64 // MONEY: signed currency PnL. R: signed R-multiple.

	// Tie-break for same-day ordering only.
	CreatedAt time.Time
}

// Settings is the fully-resolved configuration for one account view.
type Settings struct {
	StartingBalance float64
	Currency        string

	DefaultRiskType  RiskType
	DefaultRiskValue float64

	DailyStopR      float64 // <= 0
	DailyTakeR      float64 // >= 0
	MaxTradesPerDay int     // >= 1

	ReturnMode ReturnMode
}

// Day truncates t to day granularity in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
