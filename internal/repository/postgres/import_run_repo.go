package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"risparmio/internal/domain"
)

// ImportRunRepository implements domain.ImportRunRepository using PostgreSQL
type ImportRunRepository struct {
	pool *pgxpool.Pool
}

// NewImportRunRepository creates a new ImportRunRepository
func NewImportRunRepository(pool *pgxpool.Pool) *ImportRunRepository {
	return &ImportRunRepository{pool: pool}
}

// Create stores a new import run.
func (r *ImportRunRepository) Create(run *domain.ImportRun) (*domain.ImportRun, error) {
	ctx := context.Background()

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO import_runs (id, file_name, sheet, row_count, skip_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, file_name, sheet, row_count, skip_count, created_at`,
		run.ID, run.FileName, string(run.Sheet), run.RowCount, run.SkipCount)

	return scanImportRun(row)
}

// GetByID retrieves an import run by ID.
func (r *ImportRunRepository) GetByID(id uuid.UUID) (*domain.ImportRun, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx,
		`SELECT id, file_name, sheet, row_count, skip_count, created_at
		 FROM import_runs WHERE id = $1`, id)

	run, err := scanImportRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrImportRunNotFound
	}
	return run, err
}

// GetAll retrieves all import runs, newest first.
func (r *ImportRunRepository) GetAll() ([]*domain.ImportRun, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT id, file_name, sheet, row_count, skip_count, created_at
		 FROM import_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*domain.ImportRun{}
	for rows.Next() {
		run, err := scanImportRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Delete removes an import run. The transactions it created go with it
// through the ON DELETE CASCADE on transactions.import_id.
func (r *ImportRunRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM import_runs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrImportRunNotFound
	}
	return nil
}

func scanImportRun(row pgx.Row) (*domain.ImportRun, error) {
	var (
		run   domain.ImportRun
		sheet string
	)
	if err := row.Scan(&run.ID, &run.FileName, &sheet, &run.RowCount, &run.SkipCount, &run.CreatedAt); err != nil {
		return nil, err
	}
	run.Sheet = domain.Sheet(sheet)
	return &run, nil
}
