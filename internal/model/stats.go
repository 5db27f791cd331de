package model

import "time"

// DashboardStats summarizes a period's totals
type DashboardStats struct {
	TotalIngresos float64 `json:"total_ingresos"`
	TotalGastos   float64 `json:"total_gastos"`
	Balance       float64 `json:"balance"`
	Periodo       string  `json:"periodo"`
}

// CategoryStat is one category's summed amount and its share of the
// type total. Porcentaje is 0 when the type total is 0.
type CategoryStat struct {
	Categoria  string  `json:"categoria"`
	Total      float64 `json:"total"`
	Porcentaje float64 `json:"porcentaje"`
}

// ChartData holds the label axis and the two value series for a period's
// chart. The three slices are positionally aligned and equally long.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Ingresos []float64 `json:"ingresos"`
	Gastos   []float64 `json:"gastos"`
}

// DetailedReport is the combined per-period report document
type DetailedReport struct {
	Periodo              string         `json:"periodo"`
	GeneradoEn           time.Time      `json:"generado_en"`
	TotalIngresos        float64        `json:"total_ingresos"`
	TotalGastos          float64        `json:"total_gastos"`
	Balance              float64        `json:"balance"`
	CategoriasIngresos   []CategoryStat `json:"categorias_ingresos"`
	CategoriasGastos     []CategoryStat `json:"categorias_gastos"`
	UltimasTransacciones []Transaction  `json:"ultimas_transacciones"`
}
