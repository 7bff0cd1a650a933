package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/journal/trade"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a written journal. Structured facts live in a PROPERTIES drawer for
// easy search; the narrative sections are left for the trader to fill in.
func FormatTradeOrg(t trade.Trade) string {
	symbol := t.Symbol
	if symbol == "" {
		symbol = "?"
	}
	heading := fmt.Sprintf("** Trade: %s (%s)", symbol, shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":ACCOUNT: %s\n", t.Account))
	b.WriteString(fmt.Sprintf(":RISK: %s %.2f\n", t.RiskType, t.RiskValue))
	b.WriteString(fmt.Sprintf(":RESULT: %s %.2f\n", t.ResultType, t.ResultValue))
	b.WriteString(fmt.Sprintf(":CREATED_AT: %s\n", t.CreatedAt.UTC().Format(time.RFC3339)))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	if t.Notes != "" {
		b.WriteString("*** Notes\n")
		b.WriteString(fmt.Sprintf("- %s\n\n", t.Notes))
	}
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []trade.Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
