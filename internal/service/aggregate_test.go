package service

import (
	"testing"
	"time"

	"finanzas_tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(tipo string, monto float64, categoria string) model.Transaction {
	return model.Transaction{
		ID:        categoria + "-" + tipo,
		Tipo:      tipo,
		Monto:     monto,
		Categoria: categoria,
		Fecha:     time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestTotals(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeIngreso, 500000, model.CategoriaSalario),
		tx(model.TransactionTypeGasto, 150000, model.CategoriaAlimentacion),
		tx(model.TransactionTypeGasto, 50000, model.CategoriaTransporte),
	}

	stats := Totals(transactions, PeriodoMensual)

	assert.Equal(t, 500000.0, stats.TotalIngresos)
	assert.Equal(t, 200000.0, stats.TotalGastos)
	assert.Equal(t, 300000.0, stats.Balance)
	assert.Equal(t, PeriodoMensual, stats.Periodo)
	assert.Equal(t, stats.TotalIngresos-stats.TotalGastos, stats.Balance)
}

func TestTotals_Empty(t *testing.T) {
	stats := Totals(nil, PeriodoDiario)

	assert.Zero(t, stats.TotalIngresos)
	assert.Zero(t, stats.TotalGastos)
	assert.Zero(t, stats.Balance)
	assert.Equal(t, PeriodoDiario, stats.Periodo)
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeGasto, 150000, model.CategoriaAlimentacion),
		tx(model.TransactionTypeGasto, 50000, model.CategoriaTransporte),
		tx(model.TransactionTypeIngreso, 500000, model.CategoriaSalario), // filtered out
	}

	stats := CategoryBreakdown(transactions, model.TransactionTypeGasto)

	require.Len(t, stats, 2)
	assert.Equal(t, model.CategoryStat{Categoria: model.CategoriaAlimentacion, Total: 150000, Porcentaje: 75}, stats[0])
	assert.Equal(t, model.CategoryStat{Categoria: model.CategoriaTransporte, Total: 50000, Porcentaje: 25}, stats[1])
}

func TestCategoryBreakdown_PercentagesSumToHundred(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeGasto, 100, model.CategoriaAlimentacion),
		tx(model.TransactionTypeGasto, 200, model.CategoriaTransporte),
		tx(model.TransactionTypeGasto, 33, model.CategoriaSalud),
		tx(model.TransactionTypeGasto, 19, model.CategoriaVivienda),
	}

	stats := CategoryBreakdown(transactions, model.TransactionTypeGasto)

	var sum float64
	for _, s := range stats {
		sum += s.Porcentaje
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestCategoryBreakdown_ZeroTotal(t *testing.T) {
	// Zero-amount records form groups but the type total is zero, so every
	// percentage stays zero instead of dividing by zero.
	transactions := []model.Transaction{
		tx(model.TransactionTypeGasto, 0, model.CategoriaAlimentacion),
		tx(model.TransactionTypeGasto, 0, model.CategoriaTransporte),
	}

	stats := CategoryBreakdown(transactions, model.TransactionTypeGasto)

	require.Len(t, stats, 2)
	for _, s := range stats {
		assert.Zero(t, s.Porcentaje)
	}
}

func TestCategoryBreakdown_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeGasto, 40000, model.CategoriaServicios),
		tx(model.TransactionTypeGasto, 40000, model.CategoriaCompras),
		tx(model.TransactionTypeGasto, 90000, model.CategoriaVivienda),
	}

	stats := CategoryBreakdown(transactions, model.TransactionTypeGasto)

	require.Len(t, stats, 3)
	assert.Equal(t, model.CategoriaVivienda, stats[0].Categoria)
	assert.Equal(t, model.CategoriaServicios, stats[1].Categoria)
	assert.Equal(t, model.CategoriaCompras, stats[2].Categoria)
}

func TestCategoryBreakdown_NoTransactionsOfType(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeIngreso, 500000, model.CategoriaSalario),
	}

	assert.Empty(t, CategoryBreakdown(transactions, model.TransactionTypeGasto))
}

func TestAggregation_Idempotent(t *testing.T) {
	transactions := []model.Transaction{
		tx(model.TransactionTypeIngreso, 500000, model.CategoriaSalario),
		tx(model.TransactionTypeGasto, 150000, model.CategoriaAlimentacion),
		tx(model.TransactionTypeGasto, 50000, model.CategoriaTransporte),
	}

	assert.Equal(t, Totals(transactions, PeriodoMensual), Totals(transactions, PeriodoMensual))
	assert.Equal(t,
		CategoryBreakdown(transactions, model.TransactionTypeGasto),
		CategoryBreakdown(transactions, model.TransactionTypeGasto))
}
