// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	date DATETIME NOT NULL,
	symbol TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	risk_type TEXT NOT NULL,
	risk_value REAL NOT NULL,
	account TEXT NOT NULL,
	result_type TEXT NOT NULL,
	result_value REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	starting_balance REAL NOT NULL,
	currency TEXT NOT NULL,
	default_risk_type TEXT NOT NULL,
	default_risk_value REAL NOT NULL,
	daily_stop_r REAL NOT NULL,
	daily_take_r REAL NOT NULL,
	max_trades_per_day INTEGER NOT NULL,
	return_mode TEXT NOT NULL
);
`
