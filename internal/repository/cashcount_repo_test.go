package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"finanzas_tracker/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashCountRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewCashCountRepository(mock)

	descripcion := "Caja principal"
	count := &model.CashCount{
		ID:            "a1b2c3d4-0000-4000-8000-000000000001",
		Billetes50000: 2,
		Monedas500:    3,
		Total:         101500,
		Descripcion:   &descripcion,
		Fecha:         time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cash_counts`)).
		WithArgs(count.ID, 0, 2, 0, 0, 0, 0, 0, 3, 0, 0, 0, 101500.0, count.Descripcion, count.Fecha).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), count)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashCountRepository_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewCashCountRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cash_counts`)).
		WillReturnError(errors.New("disk full"))

	err = repo.Create(context.Background(), &model.CashCount{ID: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create cash count")
}

func TestCashCountRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewCashCountRepository(mock)

	fecha := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "billetes_100000", "billetes_50000", "billetes_20000", "billetes_10000", "billetes_5000", "billetes_2000",
		"monedas_1000", "monedas_500", "monedas_200", "monedas_100", "monedas_50", "total", "descripcion", "fecha",
	}).AddRow("c1", 0, 2, 0, 0, 0, 0, 0, 3, 0, 0, 0, 101500.0, nil, fecha)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cash_counts ORDER BY fecha DESC LIMIT 1000`)).
		WillReturnRows(rows)

	counts, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "c1", counts[0].ID)
	assert.Equal(t, 2, counts[0].Billetes50000)
	assert.Equal(t, 3, counts[0].Monedas500)
	assert.Equal(t, 101500.0, counts[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
