package domain

import "github.com/shopspring/decimal"

// CategoryType is the classified purpose of a savings transaction. Savings is
// money set aside and directly usable, Allocation is money earmarked for a
// future purpose, Other is any regular category.
type CategoryType string

const (
	CategoryTypeSavings    CategoryType = "Savings"
	CategoryTypeAllocation CategoryType = "Allocation"
	CategoryTypeOther      CategoryType = "Other"
)

// CategoryLedgerRow is one row of the denormalized savings ledger: the monthly
// movement and running balance for a (month, category, type) group, with the
// global metrics for that month attached.
type CategoryLedgerRow struct {
	Month          MonthKey        `json:"month"`
	Category       string          `json:"category"`
	CategoryType   CategoryType    `json:"categoryType"`
	MonthlyDelta   decimal.Decimal `json:"monthlyDelta"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	TotalSaved     decimal.Decimal `json:"totalSaved"`
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
}

// GlobalMonthlyMetrics holds the three cumulative totals as of the end of one
// month. They accrue independently and are shared across every category in
// that month.
type GlobalMonthlyMetrics struct {
	Month          MonthKey        `json:"month"`
	TotalSaved     decimal.Decimal `json:"totalSaved"`
	TotalAllocated decimal.Decimal `json:"totalAllocated"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
}

// SkippedTransaction records one input record the engine or the ingester could
// not use, with the reason it was rejected. Skips never abort a run.
type SkippedTransaction struct {
	Row    int    `json:"row,omitempty"`
	Reason string `json:"reason"`
}

// SavingsLedger is the full output of one aggregation run.
type SavingsLedger struct {
	Rows    []CategoryLedgerRow    `json:"rows"`
	Metrics []GlobalMonthlyMetrics `json:"metrics"`
	Skipped []SkippedTransaction   `json:"skipped,omitempty"`
}

// MonthlySummary is the per-month income/expense overview computed from the
// expenses and income sheets.
type MonthlySummary struct {
	Month    MonthKey        `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}
