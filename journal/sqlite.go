package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/rustyeddy/journal/trade"
)

// SQLite stores the journal in a single SQLite database file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	log.WithField("path", path).Debug("journal db opened")
	return &SQLite{db: db}, nil
}

func (j *SQLite) SaveTrade(t trade.Trade) error {
	t = Normalize(t, t.CreatedAt)
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, date, symbol, notes, risk_type, risk_value, account, result_type, result_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(trade_id) DO UPDATE SET
			date=excluded.date, symbol=excluded.symbol, notes=excluded.notes,
			risk_type=excluded.risk_type, risk_value=excluded.risk_value,
			account=excluded.account, result_type=excluded.result_type,
			result_value=excluded.result_value`,
		t.ID, t.Date, t.Symbol, t.Notes, string(t.RiskType), t.RiskValue,
		string(t.Account), string(t.ResultType), t.ResultValue, t.CreatedAt,
	)
	return err
}

func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

// ListTrades returns normalized trades for one account, ordered by date
// then created_at so callers see ledger order. An empty account returns
// everything.
func (j *SQLite) ListTrades(account trade.Account) ([]trade.Trade, error) {
	query := `
		SELECT trade_id, date, symbol, notes, risk_type, risk_value, account, result_type, result_value, created_at
		FROM trades`
	args := []any{}
	if account != "" {
		query += ` WHERE account = ?`
		args = append(args, string(account))
	}
	query += ` ORDER BY date ASC, created_at ASC`

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		var t trade.Trade
		var riskType, acct, resultType string
		if err := rows.Scan(
			&t.ID,
			&t.Date,
			&t.Symbol,
			&t.Notes,
			&riskType,
			&t.RiskValue,
			&acct,
			&resultType,
			&t.ResultValue,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		t.RiskType = trade.RiskType(riskType)
		t.Account = trade.Account(acct)
		t.ResultType = trade.ResultType(resultType)
		out = append(out, Normalize(t, t.CreatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) LoadSettings() (trade.Settings, bool, error) {
	var s trade.Settings
	var riskType, returnMode string

	row := j.db.QueryRow(`
		SELECT starting_balance, currency, default_risk_type, default_risk_value,
		       daily_stop_r, daily_take_r, max_trades_per_day, return_mode
		FROM settings WHERE id = 1`)

	err := row.Scan(
		&s.StartingBalance,
		&s.Currency,
		&riskType,
		&s.DefaultRiskValue,
		&s.DailyStopR,
		&s.DailyTakeR,
		&s.MaxTradesPerDay,
		&returnMode,
	)
	if err == sql.ErrNoRows {
		return trade.Settings{}, false, nil
	}
	if err != nil {
		return trade.Settings{}, false, err
	}

	s.DefaultRiskType = trade.RiskType(riskType)
	s.ReturnMode = trade.ReturnMode(returnMode)
	return NormalizeSettings(s), true, nil
}

func (j *SQLite) SaveSettings(s trade.Settings) error {
	s = NormalizeSettings(s)
	_, err := j.db.Exec(`
		INSERT INTO settings
		(id, starting_balance, currency, default_risk_type, default_risk_value,
		 daily_stop_r, daily_take_r, max_trades_per_day, return_mode)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			starting_balance=excluded.starting_balance,
			currency=excluded.currency,
			default_risk_type=excluded.default_risk_type,
			default_risk_value=excluded.default_risk_value,
			daily_stop_r=excluded.daily_stop_r,
			daily_take_r=excluded.daily_take_r,
			max_trades_per_day=excluded.max_trades_per_day,
			return_mode=excluded.return_mode`,
		s.StartingBalance, s.Currency, string(s.DefaultRiskType), s.DefaultRiskValue,
		s.DailyStopR, s.DailyTakeR, s.MaxTradesPerDay, string(s.ReturnMode),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
