package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"risparmio/internal/domain"
	"risparmio/internal/service"
)

// TransactionHandler serves stored transactions
type TransactionHandler struct {
	reportService *service.ReportService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(reportService *service.ReportService) *TransactionHandler {
	return &TransactionHandler{reportService: reportService}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID           int64  `json:"id"`
	Sheet        string `json:"sheet"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	CategoryType string `json:"categoryType,omitempty"`
	Value        string `json:"value"`
	ImportID     string `json:"importId"`
}

// List handles GET /api/v1/transactions
// Optional query params: sheet, from, to (both dates as YYYY-MM-DD).
func (h *TransactionHandler) List(c echo.Context) error {
	filters := &domain.TransactionFilters{}

	if sheetStr := c.QueryParam("sheet"); sheetStr != "" {
		sheet, err := domain.ParseSheet(sheetStr)
		if err != nil {
			return NewValidationError(c, "Invalid sheet", []ValidationError{
				{Field: "sheet", Message: "Must be one of: expenses, income, savings"},
			})
		}
		filters.Sheet = &sheet
	}

	if fromStr := c.QueryParam("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return NewValidationError(c, "Invalid from date", []ValidationError{
				{Field: "from", Message: "Must be YYYY-MM-DD"},
			})
		}
		filters.StartDate = &from
	}

	if toStr := c.QueryParam("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return NewValidationError(c, "Invalid to date", []ValidationError{
				{Field: "to", Message: "Must be YYYY-MM-DD"},
			})
		}
		filters.EndDate = &to
	}

	transactions, err := h.reportService.Transactions(filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list transactions")
		return NewInternalError(c, "Failed to list transactions")
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, TransactionResponse{
			ID:           tx.ID,
			Sheet:        string(tx.Sheet),
			Date:         tx.Date.Format("2006-01-02"),
			Description:  tx.Description,
			Category:     tx.Category,
			CategoryType: tx.CategoryType,
			Value:        tx.Value.StringFixed(2),
			ImportID:     tx.ImportID.String(),
		})
	}
	return c.JSON(http.StatusOK, response)
}
