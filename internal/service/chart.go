package service

import (
	"time"

	"finanzas_tracker/internal/model"
)

// BuildChartSeries buckets every transaction into the period's chart buckets
// and accumulates parallel income/expense series. The full set is scanned
// once per bucket, which stays cheap at the bounded working-set size.
func BuildChartSeries(periodo string, transactions []model.Transaction, now time.Time) (*model.ChartData, error) {
	buckets, err := PeriodBuckets(periodo, now)
	if err != nil {
		return nil, err
	}

	data := &model.ChartData{
		Labels:   make([]string, 0, len(buckets)),
		Ingresos: make([]float64, 0, len(buckets)),
		Gastos:   make([]float64, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		var ingresos, gastos float64
		for _, t := range transactions {
			if !TransactionInBucket(periodo, bucket, t.Fecha) {
				continue
			}
			if t.Tipo == model.TransactionTypeIngreso {
				ingresos += t.Monto
			} else {
				gastos += t.Monto
			}
		}
		data.Labels = append(data.Labels, bucket.Label)
		data.Ingresos = append(data.Ingresos, ingresos)
		data.Gastos = append(data.Gastos, gastos)
	}
	return data, nil
}

// TransactionInBucket applies the period-specific membership test: exact
// calendar day for diario, a half-open 7-day window for semanal, and exact
// calendar month for mensual.
func TransactionInBucket(periodo string, bucket Bucket, fecha time.Time) bool {
	fecha = fecha.UTC()
	switch periodo {
	case PeriodoDiario:
		return fecha.Format("2006-01-02") == bucket.Start.Format("2006-01-02")
	case PeriodoSemanal:
		end := bucket.Start.AddDate(0, 0, 7)
		return !fecha.Before(bucket.Start) && fecha.Before(end)
	case PeriodoMensual:
		return fecha.Format("2006-01") == bucket.Start.Format("2006-01")
	}
	return false
}
