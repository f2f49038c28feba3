package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"risparmio/internal/domain"
	"risparmio/internal/service"
)

// ReportHandler serves the reporting datasets
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// LedgerRowResponse represents one denormalized savings ledger row
type LedgerRowResponse struct {
	Month          string `json:"month"`
	Category       string `json:"category"`
	CategoryType   string `json:"categoryType"`
	MonthlyDelta   string `json:"monthlyDelta"`
	RunningBalance string `json:"runningBalance"`
	TotalSaved     string `json:"totalSaved"`
	TotalAllocated string `json:"totalAllocated"`
	TotalSpent     string `json:"totalSpent"`
}

// MetricsRowResponse represents one global monthly metrics row
type MetricsRowResponse struct {
	Month          string `json:"month"`
	TotalSaved     string `json:"totalSaved"`
	TotalAllocated string `json:"totalAllocated"`
	TotalSpent     string `json:"totalSpent"`
}

// SavingsLedgerResponse is the full savings ledger payload
type SavingsLedgerResponse struct {
	Rows    []LedgerRowResponse         `json:"rows"`
	Metrics []MetricsRowResponse        `json:"metrics"`
	Skipped []domain.SkippedTransaction `json:"skipped,omitempty"`
}

// MonthlySummaryResponse represents one month of the income/expense overview
type MonthlySummaryResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

func toLedgerResponse(result *domain.SavingsLedger) SavingsLedgerResponse {
	rows := make([]LedgerRowResponse, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, LedgerRowResponse{
			Month:          row.Month.String(),
			Category:       row.Category,
			CategoryType:   string(row.CategoryType),
			MonthlyDelta:   row.MonthlyDelta.StringFixed(2),
			RunningBalance: row.RunningBalance.StringFixed(2),
			TotalSaved:     row.TotalSaved.StringFixed(2),
			TotalAllocated: row.TotalAllocated.StringFixed(2),
			TotalSpent:     row.TotalSpent.StringFixed(2),
		})
	}
	metrics := make([]MetricsRowResponse, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		metrics = append(metrics, MetricsRowResponse{
			Month:          m.Month.String(),
			TotalSaved:     m.TotalSaved.StringFixed(2),
			TotalAllocated: m.TotalAllocated.StringFixed(2),
			TotalSpent:     m.TotalSpent.StringFixed(2),
		})
	}
	return SavingsLedgerResponse{Rows: rows, Metrics: metrics, Skipped: result.Skipped}
}

// GetSavingsLedger handles GET /api/v1/reports/savings/ledger
func (h *ReportHandler) GetSavingsLedger(c echo.Context) error {
	result, err := h.reportService.SavingsLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute savings ledger")
		return NewInternalError(c, "Failed to compute savings ledger")
	}
	return c.JSON(http.StatusOK, toLedgerResponse(result))
}

// GetSavingsMetrics handles GET /api/v1/reports/savings/metrics
func (h *ReportHandler) GetSavingsMetrics(c echo.Context) error {
	result, err := h.reportService.SavingsLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute savings metrics")
		return NewInternalError(c, "Failed to compute savings metrics")
	}
	return c.JSON(http.StatusOK, toLedgerResponse(result).Metrics)
}

// GetMonthlySummary handles GET /api/v1/reports/monthly-summary
func (h *ReportHandler) GetMonthlySummary(c echo.Context) error {
	summaries, err := h.reportService.MonthlySummary()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute monthly summary")
		return NewInternalError(c, "Failed to compute monthly summary")
	}

	response := make([]MonthlySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, MonthlySummaryResponse{
			Month:    s.Month.String(),
			Income:   s.Income.StringFixed(2),
			Expenses: s.Expenses.StringFixed(2),
			Balance:  s.Balance.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// ExportSavingsLedgerCSV handles GET /api/v1/reports/savings/ledger.csv
func (h *ReportHandler) ExportSavingsLedgerCSV(c echo.Context) error {
	result, err := h.reportService.SavingsLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute savings ledger")
		return NewInternalError(c, "Failed to compute savings ledger")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="savings_ledger.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"month", "category", "category_type", "monthly_delta", "running_balance", "total_saved", "total_allocated", "total_spent"}); err != nil {
		return err
	}
	for _, row := range result.Rows {
		record := []string{
			row.Month.String(),
			row.Category,
			string(row.CategoryType),
			row.MonthlyDelta.StringFixed(2),
			row.RunningBalance.StringFixed(2),
			row.TotalSaved.StringFixed(2),
			row.TotalAllocated.StringFixed(2),
			row.TotalSpent.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ExportSavingsMetricsCSV handles GET /api/v1/reports/savings/metrics.csv
func (h *ReportHandler) ExportSavingsMetricsCSV(c echo.Context) error {
	result, err := h.reportService.SavingsLedger()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute savings metrics")
		return NewInternalError(c, "Failed to compute savings metrics")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="savings_metrics.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"month", "total_saved", "total_allocated", "total_spent"}); err != nil {
		return err
	}
	for _, m := range result.Metrics {
		record := []string{
			m.Month.String(),
			m.TotalSaved.StringFixed(2),
			m.TotalAllocated.StringFixed(2),
			m.TotalSpent.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
