package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sheet identifies which source sheet a transaction came from.
type Sheet string

const (
	SheetExpenses Sheet = "expenses"
	SheetIncome   Sheet = "income"
	SheetSavings  Sheet = "savings"
)

// ParseSheet maps a request parameter to a Sheet.
func ParseSheet(s string) (Sheet, error) {
	switch Sheet(s) {
	case SheetExpenses, SheetIncome, SheetSavings:
		return Sheet(s), nil
	}
	return "", ErrUnknownSheet
}

type Transaction struct {
	ID           int64           `json:"id"`
	Sheet        Sheet           `json:"sheet"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CategoryType string          `json:"categoryType,omitempty"`
	Value        decimal.Decimal `json:"value"`
	ImportID     uuid.UUID       `json:"importId"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type TransactionFilters struct {
	Sheet     *Sheet
	StartDate *time.Time
	EndDate   *time.Time
}

type TransactionRepository interface {
	CreateBatch(transactions []*Transaction) error
	GetAll(filters *TransactionFilters) ([]*Transaction, error)
	GetBySheet(sheet Sheet) ([]*Transaction, error)
	DeleteByImport(importID uuid.UUID) (int64, error)
}
