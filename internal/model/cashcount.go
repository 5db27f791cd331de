package model

import "time"

// Banknote and coin face values (COP)
const (
	Billete100000 = 100000
	Billete50000  = 50000
	Billete20000  = 20000
	Billete10000  = 10000
	Billete5000   = 5000
	Billete2000   = 2000
	Moneda1000    = 1000
	Moneda500     = 500
	Moneda200     = 200
	Moneda100     = 100
	Moneda50      = 50
)

// CashCount records how many of each banknote/coin denomination were counted.
// Total is derived once at creation and never recomputed.
type CashCount struct {
	ID             string    `json:"id"`
	Billetes100000 int       `json:"billetes_100000"`
	Billetes50000  int       `json:"billetes_50000"`
	Billetes20000  int       `json:"billetes_20000"`
	Billetes10000  int       `json:"billetes_10000"`
	Billetes5000   int       `json:"billetes_5000"`
	Billetes2000   int       `json:"billetes_2000"`
	Monedas1000    int       `json:"monedas_1000"`
	Monedas500     int       `json:"monedas_500"`
	Monedas200     int       `json:"monedas_200"`
	Monedas100     int       `json:"monedas_100"`
	Monedas50      int       `json:"monedas_50"`
	Total          float64   `json:"total"`
	Descripcion    *string   `json:"descripcion,omitempty"`
	Fecha          time.Time `json:"fecha"`
}

// CreateCashCountRequest is used for creating a new cash count. Missing
// denomination fields default to zero.
type CreateCashCountRequest struct {
	Billetes100000 int     `json:"billetes_100000" binding:"gte=0"`
	Billetes50000  int     `json:"billetes_50000" binding:"gte=0"`
	Billetes20000  int     `json:"billetes_20000" binding:"gte=0"`
	Billetes10000  int     `json:"billetes_10000" binding:"gte=0"`
	Billetes5000   int     `json:"billetes_5000" binding:"gte=0"`
	Billetes2000   int     `json:"billetes_2000" binding:"gte=0"`
	Monedas1000    int     `json:"monedas_1000" binding:"gte=0"`
	Monedas500     int     `json:"monedas_500" binding:"gte=0"`
	Monedas200     int     `json:"monedas_200" binding:"gte=0"`
	Monedas100     int     `json:"monedas_100" binding:"gte=0"`
	Monedas50      int     `json:"monedas_50" binding:"gte=0"`
	Descripcion    *string `json:"descripcion"`
}

// Total returns the counted value: sum of count times face value across all
// denominations.
func (r *CreateCashCountRequest) Total() float64 {
	total := r.Billetes100000*Billete100000 +
		r.Billetes50000*Billete50000 +
		r.Billetes20000*Billete20000 +
		r.Billetes10000*Billete10000 +
		r.Billetes5000*Billete5000 +
		r.Billetes2000*Billete2000 +
		r.Monedas1000*Moneda1000 +
		r.Monedas500*Moneda500 +
		r.Monedas200*Moneda200 +
		r.Monedas100*Moneda100 +
		r.Monedas50*Moneda50
	return float64(total)
}
