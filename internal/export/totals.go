package export

import (
	"github.com/shopspring/decimal"

	"github.com/financa-pro/backend/internal/models"
)

// Totals are the incoming and outgoing sums of a filtered report.
type Totals struct {
	Incoming decimal.Decimal `json:"incoming"`
	Outgoing decimal.Decimal `json:"outgoing"`
}

// TotalsOf sums the filtered transactions. Income counts as incoming,
// expenses and investments both count as outgoing money.
func TotalsOf(s models.Snapshot, filter ReportFilter) Totals {
	totals := Totals{Incoming: decimal.Zero, Outgoing: decimal.Zero}

	for _, tx := range Filter(s, filter) {
		if tx.Type == models.TransactionIncome {
			totals.Incoming = totals.Incoming.Add(tx.Amount)
			continue
		}

		totals.Outgoing = totals.Outgoing.Add(tx.Amount)
	}

	return totals
}
