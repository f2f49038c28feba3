package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

// accumulateGlobalMetrics advances the three cumulative totals over every
// month that has at least one transaction of any type, in strictly ascending
// month order. Month m's totals are defined in terms of month m-1's, so this
// walk is inherently sequential.
//
// Accrual rules per month:
//   - TotalSaved gains the positive Savings-type values. Negative
//     Savings-type values are invisible to it.
//   - TotalAllocated gains positive Allocation values and loses the absolute
//     value of negative Allocation values.
//   - TotalSpent gains the absolute value of negative non-Allocation values.
func accumulateGlobalMetrics(transactions []classifiedTransaction) []domain.GlobalMonthlyMetrics {
	byMonth := make(map[domain.MonthKey][]classifiedTransaction)
	for _, tx := range transactions {
		byMonth[tx.Month] = append(byMonth[tx.Month], tx)
	}

	months := make([]domain.MonthKey, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	saved := decimal.Zero
	allocated := decimal.Zero
	spent := decimal.Zero

	metrics := make([]domain.GlobalMonthlyMetrics, 0, len(months))
	for _, month := range months {
		for _, tx := range byMonth[month] {
			positive := tx.Value.IsPositive()
			negative := tx.Value.IsNegative()

			switch tx.Type {
			case domain.CategoryTypeSavings:
				if positive {
					saved = saved.Add(tx.Value)
				} else if negative {
					spent = spent.Add(tx.Value.Abs())
				}
			case domain.CategoryTypeAllocation:
				if positive {
					allocated = allocated.Add(tx.Value)
				} else if negative {
					allocated = allocated.Sub(tx.Value.Abs())
				}
			default:
				if negative {
					spent = spent.Add(tx.Value.Abs())
				}
			}
		}

		metrics = append(metrics, domain.GlobalMonthlyMetrics{
			Month:          month,
			TotalSaved:     saved,
			TotalAllocated: allocated,
			TotalSpent:     spent,
		})
	}

	return metrics
}
