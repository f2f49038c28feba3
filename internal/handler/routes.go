package handler

import (
	"github.com/labstack/echo/v4"

	"risparmio/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	rateLimiter *middleware.RateLimiter,
	importHandler *ImportHandler,
	transactionHandler *TransactionHandler,
	reportHandler *ReportHandler,
	wsHandler *WebSocketHandler,
) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Import routes
	imports := api.Group("/imports")
	imports.POST("", importHandler.Upload)
	imports.GET("", importHandler.List)
	imports.DELETE("/:id", importHandler.Delete)

	// Transaction routes
	api.GET("/transactions", transactionHandler.List)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/savings/ledger", reportHandler.GetSavingsLedger)
	reports.GET("/savings/ledger.csv", reportHandler.ExportSavingsLedgerCSV)
	reports.GET("/savings/metrics", reportHandler.GetSavingsMetrics)
	reports.GET("/savings/metrics.csv", reportHandler.ExportSavingsMetricsCSV)
	reports.GET("/monthly-summary", reportHandler.GetMonthlySummary)

	// WebSocket endpoint (not rate limited, long-lived connection)
	e.GET("/ws", wsHandler.HandleWS)
}
