package service

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"risparmio/internal/domain"
	"risparmio/internal/ingest"
	"risparmio/internal/websocket"
)

// RefreshPublisher notifies connected dashboard clients that a dataset changed
type RefreshPublisher interface {
	Publish(event websocket.Event)
}

// ImportService handles CSV uploads: parsing, persistence and client notification
type ImportService struct {
	parser          *ingest.Parser
	transactionRepo domain.TransactionRepository
	importRunRepo   domain.ImportRunRepository
	publisher       RefreshPublisher
}

// NewImportService creates a new ImportService
func NewImportService(
	parser *ingest.Parser,
	transactionRepo domain.TransactionRepository,
	importRunRepo domain.ImportRunRepository,
	publisher RefreshPublisher,
) *ImportService {
	return &ImportService{
		parser:          parser,
		transactionRepo: transactionRepo,
		importRunRepo:   importRunRepo,
		publisher:       publisher,
	}
}

// Import parses one uploaded sheet and stores its transactions. Malformed
// rows are reported on the returned run, not raised as errors; an unreadable
// file fails the whole import.
func (s *ImportService) Import(fileName string, file io.Reader, sheet domain.Sheet) (*domain.ImportRun, []domain.SkippedTransaction, error) {
	parsed, err := s.parser.Parse(file, sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", fileName, err)
	}

	run, err := s.importRunRepo.Create(&domain.ImportRun{
		FileName:  fileName,
		Sheet:     sheet,
		RowCount:  len(parsed.Transactions),
		SkipCount: len(parsed.Skipped),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create import run: %w", err)
	}

	for _, tx := range parsed.Transactions {
		tx.ImportID = run.ID
	}

	if err := s.transactionRepo.CreateBatch(parsed.Transactions); err != nil {
		return nil, nil, fmt.Errorf("store transactions: %w", err)
	}

	log.Info().
		Str("file", fileName).
		Str("sheet", string(sheet)).
		Int("rows", run.RowCount).
		Int("skipped", run.SkipCount).
		Msg("Import completed")

	s.publisher.Publish(websocket.DatasetRefreshed(sheet, run))

	return run, parsed.Skipped, nil
}

// GetRuns lists all import runs, newest first.
func (s *ImportService) GetRuns() ([]*domain.ImportRun, error) {
	return s.importRunRepo.GetAll()
}

// Delete removes an import run and every transaction it created, so a bad
// upload can be rolled back and re-imported. Clients are told to re-fetch.
func (s *ImportService) Delete(id uuid.UUID) error {
	run, err := s.importRunRepo.GetByID(id)
	if err != nil {
		return err
	}

	removed, err := s.transactionRepo.DeleteByImport(id)
	if err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}

	if err := s.importRunRepo.Delete(id); err != nil {
		return fmt.Errorf("delete import run: %w", err)
	}

	log.Info().
		Str("import_id", id.String()).
		Str("sheet", string(run.Sheet)).
		Int64("transactions_removed", removed).
		Msg("Import deleted")

	s.publisher.Publish(websocket.DatasetRefreshed(run.Sheet, map[string]interface{}{
		"importId": id.String(),
		"deleted":  true,
	}))

	return nil
}
