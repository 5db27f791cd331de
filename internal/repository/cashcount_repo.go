package repository

import (
	"context"
	"fmt"

	"finanzas_tracker/internal/model"
)

// CashCountRepository defines operations for cash count data
type CashCountRepository interface {
	Create(ctx context.Context, count *model.CashCount) error
	FindAll(ctx context.Context) ([]model.CashCount, error)
}

type cashCountRepository struct {
	db DB
}

// NewCashCountRepository creates a new CashCountRepository
func NewCashCountRepository(db DB) CashCountRepository {
	return &cashCountRepository{db: db}
}

// Create inserts a new cash count into the database
func (r *cashCountRepository) Create(ctx context.Context, c *model.CashCount) error {
	sql := `INSERT INTO cash_counts (id, billetes_100000, billetes_50000, billetes_20000, billetes_10000, billetes_5000, billetes_2000,
            monedas_1000, monedas_500, monedas_200, monedas_100, monedas_50, total, descripcion, fecha)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, sql,
		c.ID, c.Billetes100000, c.Billetes50000, c.Billetes20000, c.Billetes10000, c.Billetes5000, c.Billetes2000,
		c.Monedas1000, c.Monedas500, c.Monedas200, c.Monedas100, c.Monedas50, c.Total, c.Descripcion, c.Fecha)
	if err != nil {
		return fmt.Errorf("failed to create cash count: %w", err)
	}
	return nil
}

// FindAll retrieves cash counts, newest first, capped at MaxQueryLimit rows
func (r *cashCountRepository) FindAll(ctx context.Context) ([]model.CashCount, error) {
	sql := fmt.Sprintf(`SELECT id, billetes_100000, billetes_50000, billetes_20000, billetes_10000, billetes_5000, billetes_2000,
            monedas_1000, monedas_500, monedas_200, monedas_100, monedas_50, total, descripcion, fecha
            FROM cash_counts ORDER BY fecha DESC LIMIT %d`, MaxQueryLimit)
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash counts: %w", err)
	}
	defer rows.Close()

	var counts []model.CashCount
	for rows.Next() {
		var c model.CashCount
		if err := rows.Scan(
			&c.ID, &c.Billetes100000, &c.Billetes50000, &c.Billetes20000, &c.Billetes10000, &c.Billetes5000, &c.Billetes2000,
			&c.Monedas1000, &c.Monedas500, &c.Monedas200, &c.Monedas100, &c.Monedas50, &c.Total, &c.Descripcion, &c.Fecha,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash count rows: %w", err)
	}
	return counts, nil
}
