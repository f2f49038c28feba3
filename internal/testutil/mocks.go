package testutil

import (
	"time"

	"github.com/google/uuid"

	"risparmio/internal/domain"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions  []*domain.Transaction
	CreateBatchFn func(transactions []*domain.Transaction) error
	nextID        int64
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{nextID: 1}
}

// AddTransaction adds a transaction directly to the store
func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) {
	if tx.ID == 0 {
		tx.ID = m.nextID
		m.nextID++
	}
	m.Transactions = append(m.Transactions, tx)
}

// CreateBatch stores all transactions
func (m *MockTransactionRepository) CreateBatch(transactions []*domain.Transaction) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(transactions)
	}
	for _, tx := range transactions {
		m.AddTransaction(tx)
	}
	return nil
}

// GetAll retrieves transactions matching the filters
func (m *MockTransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	result := []*domain.Transaction{}
	for _, tx := range m.Transactions {
		if filters != nil {
			if filters.Sheet != nil && tx.Sheet != *filters.Sheet {
				continue
			}
			if filters.StartDate != nil && tx.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && tx.Date.After(*filters.EndDate) {
				continue
			}
		}
		result = append(result, tx)
	}
	return result, nil
}

// GetBySheet retrieves every transaction of one sheet
func (m *MockTransactionRepository) GetBySheet(sheet domain.Sheet) ([]*domain.Transaction, error) {
	return m.GetAll(&domain.TransactionFilters{Sheet: &sheet})
}

// DeleteByImport removes every transaction created by one import run
func (m *MockTransactionRepository) DeleteByImport(importID uuid.UUID) (int64, error) {
	kept := m.Transactions[:0]
	var removed int64
	for _, tx := range m.Transactions {
		if tx.ImportID == importID {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	m.Transactions = kept
	return removed, nil
}

// MockImportRunRepository is a mock implementation of domain.ImportRunRepository
type MockImportRunRepository struct {
	Runs     map[uuid.UUID]*domain.ImportRun
	order    []uuid.UUID
	CreateFn func(run *domain.ImportRun) (*domain.ImportRun, error)
}

// NewMockImportRunRepository creates a new MockImportRunRepository
func NewMockImportRunRepository() *MockImportRunRepository {
	return &MockImportRunRepository{
		Runs: make(map[uuid.UUID]*domain.ImportRun),
	}
}

// Create stores a new import run
func (m *MockImportRunRepository) Create(run *domain.ImportRun) (*domain.ImportRun, error) {
	if m.CreateFn != nil {
		return m.CreateFn(run)
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	run.CreatedAt = time.Now()
	m.Runs[run.ID] = run
	m.order = append(m.order, run.ID)
	return run, nil
}

// GetByID retrieves an import run by ID
func (m *MockImportRunRepository) GetByID(id uuid.UUID) (*domain.ImportRun, error) {
	if run, ok := m.Runs[id]; ok {
		return run, nil
	}
	return nil, domain.ErrImportRunNotFound
}

// Delete removes an import run
func (m *MockImportRunRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Runs[id]; !ok {
		return domain.ErrImportRunNotFound
	}
	delete(m.Runs, id)
	for i, runID := range m.order {
		if runID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetAll retrieves all import runs, newest first
func (m *MockImportRunRepository) GetAll() ([]*domain.ImportRun, error) {
	runs := []*domain.ImportRun{}
	for i := len(m.order) - 1; i >= 0; i-- {
		runs = append(runs, m.Runs[m.order[i]])
	}
	return runs, nil
}
