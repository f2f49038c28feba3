package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

func ledgerRow(month domain.MonthKey, category string, categoryType domain.CategoryType, delta int64) domain.CategoryLedgerRow {
	return domain.CategoryLedgerRow{
		Month:        month,
		Category:     category,
		CategoryType: categoryType,
		MonthlyDelta: decimal.NewFromInt(delta),
	}
}

func TestComputeRunningBalances_PrefixSum(t *testing.T) {
	rows, err := ComputeRunningBalances([]domain.CategoryLedgerRow{
		ledgerRow("2024-03", "Vacation", domain.CategoryTypeAllocation, 30),
		ledgerRow("2024-01", "Vacation", domain.CategoryTypeAllocation, 100),
		ledgerRow("2024-02", "Vacation", domain.CategoryTypeAllocation, -20),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := map[domain.MonthKey]int64{
		"2024-01": 100,
		"2024-02": 80,
		"2024-03": 110,
	}
	for _, row := range rows {
		want, ok := expected[row.Month]
		if !ok {
			t.Fatalf("Unexpected month %s", row.Month)
		}
		if !row.RunningBalance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("Running balance for %s = %s, want %d", row.Month, row.RunningBalance, want)
		}
	}
}

func TestComputeRunningBalances_KeysAreIndependent(t *testing.T) {
	rows, err := ComputeRunningBalances([]domain.CategoryLedgerRow{
		ledgerRow("2024-01", "Vacation", domain.CategoryTypeAllocation, 100),
		ledgerRow("2024-02", "Vacation", domain.CategoryTypeAllocation, 50),
		ledgerRow("2024-01", "Vacation", domain.CategoryTypeSavings, 10),
		ledgerRow("2024-02", "Emergency", domain.CategoryTypeSavings, 7),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Same category, different type: separate series.
	for _, row := range rows {
		if row.Category == "Vacation" && row.CategoryType == domain.CategoryTypeSavings {
			if !row.RunningBalance.Equal(decimal.NewFromInt(10)) {
				t.Errorf("Vacation/Savings balance = %s, want 10", row.RunningBalance)
			}
		}
		if row.Category == "Emergency" {
			if !row.RunningBalance.Equal(decimal.NewFromInt(7)) {
				t.Errorf("Emergency balance = %s, want 7", row.RunningBalance)
			}
		}
		if row.Category == "Vacation" && row.CategoryType == domain.CategoryTypeAllocation && row.Month == "2024-02" {
			if !row.RunningBalance.Equal(decimal.NewFromInt(150)) {
				t.Errorf("Vacation/Allocation Feb balance = %s, want 150", row.RunningBalance)
			}
		}
	}
}

func TestComputeRunningBalances_ManyKeys(t *testing.T) {
	// Enough series to exercise the parallel fan-out.
	var rows []domain.CategoryLedgerRow
	categories := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	months := []domain.MonthKey{"2023-01", "2023-02", "2023-03", "2023-04", "2023-05"}
	for _, cat := range categories {
		for _, m := range months {
			rows = append(rows, ledgerRow(m, cat, domain.CategoryTypeSavings, 10))
		}
	}

	result, err := ComputeRunningBalances(rows)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, row := range result {
		if row.Month == "2023-05" && !row.RunningBalance.Equal(decimal.NewFromInt(50)) {
			t.Errorf("Category %s final balance = %s, want 50", row.Category, row.RunningBalance)
		}
	}
}

func TestComputeRunningBalances_MalformedMonthIsFatal(t *testing.T) {
	_, err := ComputeRunningBalances([]domain.CategoryLedgerRow{
		ledgerRow("2024-01", "Vacation", domain.CategoryTypeAllocation, 100),
		ledgerRow("Jan 2024", "Vacation", domain.CategoryTypeAllocation, 50),
	})
	if err == nil {
		t.Fatal("Expected error for malformed month key")
	}
	if !errors.Is(err, domain.ErrNonChronologicalMonth) {
		t.Errorf("Expected ErrNonChronologicalMonth, got %v", err)
	}
}

func TestComputeRunningBalances_Empty(t *testing.T) {
	rows, err := ComputeRunningBalances([]domain.CategoryLedgerRow{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected 0 rows, got %d", len(rows))
	}
}
