package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// CreateBatch inserts all transactions in one round trip.
func (r *TransactionRepository) CreateBatch(transactions []*domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	ctx := context.Background()

	rows := make([][]any, 0, len(transactions))
	for _, tx := range transactions {
		value, err := decimalToPgNumeric(tx.Value)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}

		var date pgtype.Date
		date.Time = tx.Date
		date.Valid = true

		rows = append(rows, []any{
			string(tx.Sheet), date, tx.Description, tx.Category, tx.CategoryType, value, tx.ImportID,
		})
	}

	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"transactions"},
		[]string{"sheet", "transaction_date", "description", "category", "category_type", "value", "import_id"},
		pgx.CopyFromRows(rows),
	)
	return err
}

// GetAll retrieves transactions matching the filters, ordered by date.
func (r *TransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	ctx := context.Background()

	query := `SELECT id, sheet, transaction_date, description, category, category_type, value, import_id, created_at
		FROM transactions WHERE 1=1`
	args := []any{}

	if filters != nil {
		if filters.Sheet != nil {
			args = append(args, string(*filters.Sheet))
			query += fmt.Sprintf(" AND sheet = $%d", len(args))
		}
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
		}
	}

	query += " ORDER BY transaction_date, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetBySheet retrieves every transaction of one sheet, ordered by date.
func (r *TransactionRepository) GetBySheet(sheet domain.Sheet) ([]*domain.Transaction, error) {
	return r.GetAll(&domain.TransactionFilters{Sheet: &sheet})
}

// DeleteByImport removes every transaction created by one import run and
// returns the number of rows removed.
func (r *TransactionRepository) DeleteByImport(importID uuid.UUID) (int64, error) {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, "DELETE FROM transactions WHERE import_id = $1", importID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	transactions := []*domain.Transaction{}
	for rows.Next() {
		var (
			tx    domain.Transaction
			sheet string
			date  pgtype.Date
			value pgtype.Numeric
		)
		if err := rows.Scan(&tx.ID, &sheet, &date, &tx.Description, &tx.Category, &tx.CategoryType, &value, &tx.ImportID, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Sheet = domain.Sheet(sheet)
		tx.Date = date.Time
		tx.Value = pgNumericToDecimal(value)
		transactions = append(transactions, &tx)
	}
	return transactions, rows.Err()
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
