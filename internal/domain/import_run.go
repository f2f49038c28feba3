package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportRun records one CSV upload: which sheet it targeted, how many rows
// were stored and how many were skipped.
type ImportRun struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"fileName"`
	Sheet     Sheet     `json:"sheet"`
	RowCount  int       `json:"rowCount"`
	SkipCount int       `json:"skipCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type ImportRunRepository interface {
	Create(run *ImportRun) (*ImportRun, error)
	GetByID(id uuid.UUID) (*ImportRun, error)
	GetAll() ([]*ImportRun, error)
	Delete(id uuid.UUID) error
}
