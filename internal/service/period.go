package service

import (
	"fmt"
	"strings"
	"time"
)

// Period keywords selecting the aggregation window
const (
	PeriodoDiario  = "diario"
	PeriodoSemanal = "semanal"
	PeriodoMensual = "mensual"
	PeriodoAnual   = "anual" // stats and reports only; no chart buckets
)

// InvalidPeriodError reports an unrecognized period keyword together with
// the set that would have been accepted.
type InvalidPeriodError struct {
	Periodo string
	Validos []string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("Período no válido. Use: %s", strings.Join(e.Validos, ", "))
}

var (
	statsPeriodos = []string{PeriodoDiario, PeriodoSemanal, PeriodoMensual, PeriodoAnual}
	chartPeriodos = []string{PeriodoDiario, PeriodoSemanal, PeriodoMensual}
)

// Bucket is one chart sub-window: its start boundary and display label.
// Membership of a transaction in a bucket depends on the period keyword,
// see TransactionInBucket.
type Bucket struct {
	Start time.Time
	Label string
}

// ResolvePeriodStart computes the inclusive start boundary of a period
// window relative to now, in UTC. The daily window starts at today's
// midnight; the others are rolling windows of 7, 30 and 365 days.
func ResolvePeriodStart(periodo string, now time.Time) (time.Time, error) {
	now = now.UTC()
	switch periodo {
	case PeriodoDiario:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	case PeriodoSemanal:
		return now.AddDate(0, 0, -7), nil
	case PeriodoMensual:
		return now.AddDate(0, 0, -30), nil
	case PeriodoAnual:
		return now.AddDate(0, 0, -365), nil
	default:
		return time.Time{}, &InvalidPeriodError{Periodo: periodo, Validos: statsPeriodos}
	}
}

// PeriodBuckets returns the ordered chart buckets for a period, oldest
// first: 7 days for diario, 4 week windows for semanal, 6 for mensual.
// The mensual anchors step back 30 days at a time while bucket membership
// matches by calendar month; that mismatch is intentional and mirrors the
// stats window.
func PeriodBuckets(periodo string, now time.Time) ([]Bucket, error) {
	now = now.UTC()
	switch periodo {
	case PeriodoDiario:
		buckets := make([]Bucket, 0, 7)
		for i := 6; i >= 0; i-- {
			day := truncateToDay(now.AddDate(0, 0, -i))
			buckets = append(buckets, Bucket{Start: day, Label: day.Format("02/01")})
		}
		return buckets, nil
	case PeriodoSemanal:
		buckets := make([]Bucket, 0, 4)
		for i := 3; i >= 0; i-- {
			start := truncateToDay(now.AddDate(0, 0, -7*i))
			buckets = append(buckets, Bucket{Start: start, Label: "Sem " + start.Format("02/01")})
		}
		return buckets, nil
	case PeriodoMensual:
		buckets := make([]Bucket, 0, 6)
		for i := 5; i >= 0; i-- {
			start := now.AddDate(0, 0, -30*i)
			buckets = append(buckets, Bucket{Start: start, Label: start.Format("01/2006")})
		}
		return buckets, nil
	default:
		return nil, &InvalidPeriodError{Periodo: periodo, Validos: chartPeriodos}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
