package service

import (
	"context"
	"fmt"
	"time"

	"finanzas_tracker/internal/model"
	"finanzas_tracker/internal/repository"
)

// RecentTransactionLimit bounds the recent-transaction list in reports.
const RecentTransactionLimit = 20

// StatsService exposes the period-based aggregation endpoints: dashboard
// totals, chart series and the combined report
type StatsService interface {
	DashboardStats(ctx context.Context, periodo string) (*model.DashboardStats, error)
	ChartData(ctx context.Context, periodo string) (*model.ChartData, error)
	Report(ctx context.Context, periodo string) (*model.DetailedReport, error)
}

type statsService struct {
	transactions repository.TransactionRepository
	now          func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(transactions repository.TransactionRepository) StatsService {
	return &statsService{transactions: transactions, now: time.Now}
}

// DashboardStats computes income/expense totals and the balance over the
// period window ending now.
func (s *statsService) DashboardStats(ctx context.Context, periodo string) (*model.DashboardStats, error) {
	start, err := ResolvePeriodStart(periodo, s.now())
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.FindAll(ctx, model.TransactionFilters{Desde: &start})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for stats: %w", err)
	}

	stats := Totals(transactions, periodo)
	return &stats, nil
}

// ChartData builds the labeled income/expense series for a period. The
// keyword is validated before touching storage.
func (s *statsService) ChartData(ctx context.Context, periodo string) (*model.ChartData, error) {
	now := s.now()
	if _, err := PeriodBuckets(periodo, now); err != nil {
		return nil, err
	}

	transactions, err := s.transactions.FindAll(ctx, model.TransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for chart data: %w", err)
	}

	return BuildChartSeries(periodo, transactions, now)
}

// Report assembles the combined report for a period: totals, per-category
// breakdowns for each side, and the most recent transactions. The
// generation timestamp is captured once up front. Each sub-step runs its
// own query; a transaction inserted mid-composition may appear in some
// sections and not others. Any sub-step failure aborts the whole report.
func (s *statsService) Report(ctx context.Context, periodo string) (*model.DetailedReport, error) {
	generadoEn := s.now().UTC()

	start, err := ResolvePeriodStart(periodo, generadoEn)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.FindAll(ctx, model.TransactionFilters{Desde: &start})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for report totals: %w", err)
	}
	stats := Totals(transactions, periodo)

	tipoIngreso := model.TransactionTypeIngreso
	ingresos, err := s.transactions.FindAll(ctx, model.TransactionFilters{Tipo: &tipoIngreso, Desde: &start})
	if err != nil {
		return nil, fmt.Errorf("failed to query income transactions for report: %w", err)
	}

	tipoGasto := model.TransactionTypeGasto
	gastos, err := s.transactions.FindAll(ctx, model.TransactionFilters{Tipo: &tipoGasto, Desde: &start})
	if err != nil {
		return nil, fmt.Errorf("failed to query expense transactions for report: %w", err)
	}

	recientes, err := s.transactions.FindRecent(ctx, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions for report: %w", err)
	}

	return &model.DetailedReport{
		Periodo:              periodo,
		GeneradoEn:           generadoEn,
		TotalIngresos:        stats.TotalIngresos,
		TotalGastos:          stats.TotalGastos,
		Balance:              stats.Balance,
		CategoriasIngresos:   CategoryBreakdown(ingresos, model.TransactionTypeIngreso),
		CategoriasGastos:     CategoryBreakdown(gastos, model.TransactionTypeGasto),
		UltimasTransacciones: recientes,
	}, nil
}
