package service

import (
	"sort"

	"finanzas_tracker/internal/model"
)

// Totals sums the given transactions into income and expense totals and the
// resulting balance. An empty set yields all zeros.
func Totals(transactions []model.Transaction, periodo string) model.DashboardStats {
	stats := model.DashboardStats{Periodo: periodo}
	for _, t := range transactions {
		switch t.Tipo {
		case model.TransactionTypeIngreso:
			stats.TotalIngresos += t.Monto
		case model.TransactionTypeGasto:
			stats.TotalGastos += t.Monto
		}
	}
	stats.Balance = stats.TotalIngresos - stats.TotalGastos
	return stats
}

// CategoryBreakdown groups the transactions of the given tipo by categoria
// and computes each group's share of the type total. Results are ordered by
// total descending; ties keep the order in which a category first appeared.
// All percentages are 0 when the type total is 0.
func CategoryBreakdown(transactions []model.Transaction, tipo string) []model.CategoryStat {
	totals := make(map[string]float64)
	var order []string
	var typeTotal float64

	for _, t := range transactions {
		if t.Tipo != tipo {
			continue
		}
		if _, seen := totals[t.Categoria]; !seen {
			order = append(order, t.Categoria)
		}
		totals[t.Categoria] += t.Monto
		typeTotal += t.Monto
	}

	stats := make([]model.CategoryStat, 0, len(order))
	for _, categoria := range order {
		stat := model.CategoryStat{Categoria: categoria, Total: totals[categoria]}
		if typeTotal > 0 {
			stat.Porcentaje = totals[categoria] / typeTotal * 100
		}
		stats = append(stats, stat)
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	return stats
}
