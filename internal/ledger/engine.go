package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

// Engine is the savings ledger aggregation engine. It is stateless between
// runs: every Run recomputes from the full transaction log it is given.
type Engine struct {
	classifier *Classifier
}

// NewEngine creates an Engine using the given classifier.
func NewEngine(classifier *Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// classifiedTransaction is a savings transaction after classification,
// reduced to the fields the aggregation stages use.
type classifiedTransaction struct {
	Month    domain.MonthKey
	Category string
	Type     domain.CategoryType
	Value    decimal.Decimal
}

// Run aggregates the full savings transaction log into the denormalized
// ledger table and the companion global metrics table.
//
// Records the engine cannot classify or sum are collected into Skipped and
// excluded from every aggregate; they never abort the run. A month key that
// does not sort chronologically aborts the whole run, since it would silently
// corrupt every downstream running total.
func (e *Engine) Run(transactions []*domain.Transaction) (*domain.SavingsLedger, error) {
	classified, skipped := e.classify(transactions)

	rows := aggregateMonthly(classified)

	rows, err := ComputeRunningBalances(rows)
	if err != nil {
		return nil, err
	}

	metrics := accumulateGlobalMetrics(classified)

	rows = attachMetrics(rows, metrics)

	return &domain.SavingsLedger{
		Rows:    rows,
		Metrics: metrics,
		Skipped: skipped,
	}, nil
}

// classify maps raw transactions to classified ones, collecting records that
// are missing the fields the engine needs.
func (e *Engine) classify(transactions []*domain.Transaction) ([]classifiedTransaction, []domain.SkippedTransaction) {
	classified := make([]classifiedTransaction, 0, len(transactions))
	var skipped []domain.SkippedTransaction

	for i, tx := range transactions {
		if tx == nil {
			skipped = append(skipped, domain.SkippedTransaction{Row: i + 1, Reason: "missing record"})
			continue
		}
		if tx.Date.IsZero() {
			skipped = append(skipped, domain.SkippedTransaction{Row: i + 1, Reason: "missing date"})
			continue
		}
		if tx.Category == "" {
			skipped = append(skipped, domain.SkippedTransaction{Row: i + 1, Reason: "missing category"})
			continue
		}
		if tx.CategoryType == "" {
			skipped = append(skipped, domain.SkippedTransaction{Row: i + 1, Reason: "missing category type"})
			continue
		}

		classified = append(classified, classifiedTransaction{
			Month:    domain.MonthKeyOf(tx.Date),
			Category: tx.Category,
			Type:     e.classifier.Classify(tx.CategoryType),
			Value:    tx.Value,
		})
	}

	return classified, skipped
}

// attachMetrics left-joins the global metrics onto every ledger row for the
// same month. A row whose month has no metrics row gets zero-filled metrics
// rather than missing values. The final table is sorted by month, then
// category, then type.
func attachMetrics(rows []domain.CategoryLedgerRow, metrics []domain.GlobalMonthlyMetrics) []domain.CategoryLedgerRow {
	byMonth := make(map[domain.MonthKey]domain.GlobalMonthlyMetrics, len(metrics))
	for _, m := range metrics {
		byMonth[m.Month] = m
	}

	for i := range rows {
		m, ok := byMonth[rows[i].Month]
		if !ok {
			m = domain.GlobalMonthlyMetrics{
				TotalSaved:     decimal.Zero,
				TotalAllocated: decimal.Zero,
				TotalSpent:     decimal.Zero,
			}
		}
		rows[i].TotalSaved = m.TotalSaved
		rows[i].TotalAllocated = m.TotalAllocated
		rows[i].TotalSpent = m.TotalSpent
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].CategoryType < rows[j].CategoryType
	})

	return rows
}
