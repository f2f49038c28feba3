package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
	"risparmio/internal/ledger"
	"risparmio/internal/service"
	"risparmio/internal/testutil"
)

func newTransactionHandler(t *testing.T) (*TransactionHandler, *testutil.MockTransactionRepository) {
	t.Helper()
	transactionRepo := testutil.NewMockTransactionRepository()
	engine := ledger.NewEngine(ledger.DefaultClassifier())
	reportService := service.NewReportService(transactionRepo, engine)
	return NewTransactionHandler(reportService), transactionRepo
}

func TestListTransactions_All(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionHandler(t)

	repo.AddTransaction(&domain.Transaction{
		Sheet:    domain.SheetExpenses,
		Date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Value:    decimal.NewFromInt(80),
	})
	repo.AddTransaction(&domain.Transaction{
		Sheet:    domain.SheetIncome,
		Date:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Category: "Salary",
		Value:    decimal.NewFromInt(2000),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(response))
	}
	if response[0].Value != "80.00" {
		t.Errorf("Expected value '80.00', got %s", response[0].Value)
	}
	if response[0].Date != "2024-01-10" {
		t.Errorf("Expected date '2024-01-10', got %s", response[0].Date)
	}
}

func TestListTransactions_FilteredBySheet(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionHandler(t)

	repo.AddTransaction(&domain.Transaction{
		Sheet:    domain.SheetExpenses,
		Date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Value:    decimal.NewFromInt(80),
	})
	repo.AddTransaction(&domain.Transaction{
		Sheet:        domain.SheetSavings,
		Date:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Category:     "Emergency Fund",
		CategoryType: "Savings",
		Value:        decimal.NewFromInt(100),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?sheet=savings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(response))
	}
	if response[0].Sheet != "savings" {
		t.Errorf("Expected sheet 'savings', got %s", response[0].Sheet)
	}
	if response[0].CategoryType != "Savings" {
		t.Errorf("Expected category type 'Savings', got %s", response[0].CategoryType)
	}
}

func TestListTransactions_FilteredByDateRange(t *testing.T) {
	e := echo.New()
	handler, repo := newTransactionHandler(t)

	repo.AddTransaction(&domain.Transaction{
		Sheet:    domain.SheetExpenses,
		Date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Value:    decimal.NewFromInt(80),
	})
	repo.AddTransaction(&domain.Transaction{
		Sheet:    domain.SheetExpenses,
		Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Category: "Groceries",
		Value:    decimal.NewFromInt(95),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?from=2024-02-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(response))
	}
	if response[0].Date != "2024-03-05" {
		t.Errorf("Expected date '2024-03-05', got %s", response[0].Date)
	}
}

func TestListTransactions_InvalidQueryParams(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler(t)

	tests := []struct {
		name  string
		query string
	}{
		{"Invalid sheet", "?sheet=bonds"},
		{"Invalid from date", "?from=10-01-2024"},
		{"Invalid to date", "?to=March"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.List(c); err != nil {
				t.Fatalf("Expected JSON response, got error: %v", err)
			}

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}

			var problemDetails ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if problemDetails.Type != ErrorTypeValidation {
				t.Errorf("Expected error type %s, got %s", ErrorTypeValidation, problemDetails.Type)
			}
		})
	}
}
