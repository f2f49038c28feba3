package ledger

import (
	"risparmio/internal/domain"
)

// groupKey identifies one (month, category, type) aggregation group.
type groupKey struct {
	Month    domain.MonthKey
	Category string
	Type     domain.CategoryType
}

// aggregateMonthly groups classified transactions by (month, category, type)
// and sums their values into MonthlyDelta. Running balances are filled by the
// next stage. Empty input yields an empty, non-nil result so callers never
// branch on shape.
func aggregateMonthly(transactions []classifiedTransaction) []domain.CategoryLedgerRow {
	sums := make(map[groupKey]int)
	rows := make([]domain.CategoryLedgerRow, 0, len(transactions))

	for _, tx := range transactions {
		key := groupKey{Month: tx.Month, Category: tx.Category, Type: tx.Type}
		if idx, ok := sums[key]; ok {
			rows[idx].MonthlyDelta = rows[idx].MonthlyDelta.Add(tx.Value)
			continue
		}
		sums[key] = len(rows)
		rows = append(rows, domain.CategoryLedgerRow{
			Month:        tx.Month,
			Category:     tx.Category,
			CategoryType: tx.Type,
			MonthlyDelta: tx.Value,
		})
	}

	return rows
}
