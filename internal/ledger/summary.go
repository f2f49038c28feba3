package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

// MonthlySummaries computes the per-month income/expense overview from the
// income and expenses sheets. Values on both sheets are stored positive;
// balance is income minus expenses for the month (not cumulative).
func MonthlySummaries(income, expenses []*domain.Transaction) []domain.MonthlySummary {
	type totals struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	byMonth := make(map[domain.MonthKey]*totals)
	get := func(m domain.MonthKey) *totals {
		t, ok := byMonth[m]
		if !ok {
			t = &totals{income: decimal.Zero, expenses: decimal.Zero}
			byMonth[m] = t
		}
		return t
	}

	for _, tx := range income {
		if tx.Date.IsZero() {
			continue
		}
		t := get(domain.MonthKeyOf(tx.Date))
		t.income = t.income.Add(tx.Value)
	}
	for _, tx := range expenses {
		if tx.Date.IsZero() {
			continue
		}
		t := get(domain.MonthKeyOf(tx.Date))
		t.expenses = t.expenses.Add(tx.Value)
	}

	months := make([]domain.MonthKey, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	summaries := make([]domain.MonthlySummary, 0, len(months))
	for _, m := range months {
		t := byMonth[m]
		summaries = append(summaries, domain.MonthlySummary{
			Month:    m,
			Income:   t.income,
			Expenses: t.expenses,
			Balance:  t.income.Sub(t.expenses),
		})
	}

	return summaries
}
