package ledger

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"risparmio/internal/domain"
)

// seriesKey identifies one independent running-balance series.
type seriesKey struct {
	Category string
	Type     domain.CategoryType
}

// ComputeRunningBalances fills RunningBalance on every row: for each distinct
// (category, type) key the monthly rows are sorted by month ascending and
// MonthlyDelta is prefix-summed. Each key's series is independent of every
// other key's, so the per-key work fans out across goroutines.
//
// Every month key is validated up front; a key that does not sort
// chronologically is fatal for the whole computation.
func ComputeRunningBalances(rows []domain.CategoryLedgerRow) ([]domain.CategoryLedgerRow, error) {
	for _, row := range rows {
		if err := row.Month.Validate(); err != nil {
			return nil, err
		}
	}

	// Partition row indices by series. Each goroutine only touches the rows
	// of its own series, so no locking is needed.
	series := make(map[seriesKey][]int)
	for i, row := range rows {
		key := seriesKey{Category: row.Category, Type: row.CategoryType}
		series[key] = append(series[key], i)
	}

	var g errgroup.Group
	for _, indices := range series {
		g.Go(func() error {
			sort.Slice(indices, func(a, b int) bool {
				return rows[indices[a]].Month < rows[indices[b]].Month
			})

			running := rows[indices[0]].MonthlyDelta
			rows[indices[0]].RunningBalance = running
			for _, idx := range indices[1:] {
				running = running.Add(rows[idx].MonthlyDelta)
				rows[idx].RunningBalance = running
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
