package repository

import (
	"context"
	"fmt"
	"strings"

	"finanzas_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MaxQueryLimit bounds the working set fetched by list queries.
const MaxQueryLimit = 1000

// DB is the subset of pgxpool.Pool the repositories use. Keeping it an
// interface lets tests substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TransactionRepository defines operations for transaction data
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	FindAll(ctx context.Context, filters model.TransactionFilters) ([]model.Transaction, error)
	FindRecent(ctx context.Context, limit int) ([]model.Transaction, error)
}

type transactionRepository struct {
	db DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a new transaction into the database
func (r *transactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	sql := `INSERT INTO transactions (id, tipo, monto, categoria, descripcion, fecha)
            VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, sql, t.ID, t.Tipo, t.Monto, t.Categoria, t.Descripcion, t.Fecha)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// FindAll retrieves transactions with optional filters, newest first,
// capped at MaxQueryLimit rows
func (r *transactionRepository) FindAll(ctx context.Context, filters model.TransactionFilters) ([]model.Transaction, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, tipo, monto, categoria, descripcion, fecha FROM transactions`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Tipo != nil && *filters.Tipo != "" {
		conditions = append(conditions, fmt.Sprintf("tipo = $%d", argCount))
		args = append(args, *filters.Tipo)
		argCount++
	}
	if filters.Desde != nil {
		conditions = append(conditions, fmt.Sprintf("fecha >= $%d", argCount))
		args = append(args, *filters.Desde)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY fecha DESC LIMIT %d", MaxQueryLimit))

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindRecent retrieves the most recent transactions ordered by fecha descending
func (r *transactionRepository) FindRecent(ctx context.Context, limit int) ([]model.Transaction, error) {
	sql := `SELECT id, tipo, monto, categoria, descripcion, fecha FROM transactions
            ORDER BY fecha DESC LIMIT $1`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Tipo, &t.Monto, &t.Categoria, &t.Descripcion, &t.Fecha); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}
