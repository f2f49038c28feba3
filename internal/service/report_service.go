package service

import (
	"risparmio/internal/domain"
	"risparmio/internal/ledger"
)

// ReportService produces the reporting datasets from the stored transaction
// log. Every report recomputes from the full log; there is no incremental
// update path and no cached state between calls.
type ReportService struct {
	transactionRepo domain.TransactionRepository
	engine          *ledger.Engine
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, engine *ledger.Engine) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		engine:          engine,
	}
}

// SavingsLedger runs the aggregation engine over the full savings sheet and
// returns the denormalized ledger with the companion metrics table.
func (s *ReportService) SavingsLedger() (*domain.SavingsLedger, error) {
	transactions, err := s.transactionRepo.GetBySheet(domain.SheetSavings)
	if err != nil {
		return nil, err
	}
	return s.engine.Run(transactions)
}

// MonthlySummary computes the per-month income/expense overview.
func (s *ReportService) MonthlySummary() ([]domain.MonthlySummary, error) {
	income, err := s.transactionRepo.GetBySheet(domain.SheetIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := s.transactionRepo.GetBySheet(domain.SheetExpenses)
	if err != nil {
		return nil, err
	}
	return ledger.MonthlySummaries(income, expenses), nil
}

// Transactions lists stored transactions with optional filters.
func (s *ReportService) Transactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll(filters)
}
