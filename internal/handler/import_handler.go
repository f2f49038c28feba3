package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"risparmio/internal/domain"
	"risparmio/internal/service"
)

// ImportHandler handles CSV upload requests
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportRunResponse represents an import run in API responses
type ImportRunResponse struct {
	ID        string                      `json:"id"`
	FileName  string                      `json:"fileName"`
	Sheet     string                      `json:"sheet"`
	RowCount  int                         `json:"rowCount"`
	SkipCount int                         `json:"skipCount"`
	CreatedAt string                      `json:"createdAt"`
	Skipped   []domain.SkippedTransaction `json:"skipped,omitempty"`
}

func toImportRunResponse(run *domain.ImportRun, skipped []domain.SkippedTransaction) ImportRunResponse {
	return ImportRunResponse{
		ID:        run.ID.String(),
		FileName:  run.FileName,
		Sheet:     string(run.Sheet),
		RowCount:  run.RowCount,
		SkipCount: run.SkipCount,
		CreatedAt: run.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Skipped:   skipped,
	}
}

// Upload handles POST /api/v1/imports
// Expects a multipart form with a "file" part and a "sheet" field.
func (h *ImportHandler) Upload(c echo.Context) error {
	sheet, err := domain.ParseSheet(c.FormValue("sheet"))
	if err != nil {
		return NewValidationError(c, "Invalid sheet", []ValidationError{
			{Field: "sheet", Message: "Must be one of: expenses, income, savings"},
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return NewValidationError(c, "Missing file", []ValidationError{
			{Field: "file", Message: "A CSV file is required"},
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	run, skipped, err := h.importService.Import(fileHeader.Filename, file, sheet)
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Str("sheet", string(sheet)).Msg("Import failed")
		if errors.Is(err, domain.ErrEmptyFile) || errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, err.Error(), nil)
		}
		return NewInternalError(c, "Failed to import file")
	}

	return c.JSON(http.StatusCreated, toImportRunResponse(run, skipped))
}

// Delete handles DELETE /api/v1/imports/:id
// Removes the import run and every transaction it created.
func (h *ImportHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid import ID", []ValidationError{
			{Field: "id", Message: "Must be a UUID"},
		})
	}

	if err := h.importService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrImportRunNotFound) {
			return NewNotFoundError(c, "Import run not found")
		}
		log.Error().Err(err).Str("import_id", id.String()).Msg("Failed to delete import")
		return NewInternalError(c, "Failed to delete import")
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/v1/imports
func (h *ImportHandler) List(c echo.Context) error {
	runs, err := h.importService.GetRuns()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list import runs")
		return NewInternalError(c, "Failed to list import runs")
	}

	response := make([]ImportRunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, toImportRunResponse(run, nil))
	}
	return c.JSON(http.StatusOK, response)
}
