// Package journal persists the trade log and account settings. It is the
// storage port the calculation engine is fed from: the engine itself never
// touches storage, callers load trades here and hand them over.
package journal

import (
	"github.com/rustyeddy/journal/trade"
)

// Store is the persistence port. Implementations return fully normalized
// trades; see Normalize for what that guarantees.
type Store interface {
	SaveTrade(trade.Trade) error
	DeleteTrade(id string) error

	// ListTrades returns trades for one account, ordered by date then
	// CreatedAt. An empty account returns every trade.
	ListTrades(account trade.Account) ([]trade.Trade, error)

	// LoadSettings reports found=false when no settings have been saved.
	LoadSettings() (s trade.Settings, found bool, err error)
	SaveSettings(trade.Settings) error

	Close() error
}
