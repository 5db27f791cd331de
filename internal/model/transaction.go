package model

import "time"

const (
	TransactionTypeIngreso = "ingreso"
	TransactionTypeGasto   = "gasto"
)

// Income categories
const (
	CategoriaSalario       = "salario"
	CategoriaFreelance     = "freelance"
	CategoriaVentas        = "ventas"
	CategoriaInversiones   = "inversiones"
	CategoriaOtrosIngresos = "otros_ingresos"
)

// Expense categories
const (
	CategoriaAlimentacion    = "alimentacion"
	CategoriaTransporte      = "transporte"
	CategoriaVivienda        = "vivienda"
	CategoriaEntretenimiento = "entretenimiento"
	CategoriaSalud           = "salud"
	CategoriaEducacion       = "educacion"
	CategoriaCompras         = "compras"
	CategoriaServicios       = "servicios"
	CategoriaOtrosGastos     = "otros_gastos"
)

// CategoriaCashCount tags the income transaction generated for a positive
// cash count. System-assigned only; create requests cannot use it.
const CategoriaCashCount = "cash-count"

// Transaction represents an income or expense record. Immutable once created.
type Transaction struct {
	ID          string    `json:"id"`
	Tipo        string    `json:"tipo"` // "ingreso" or "gasto"
	Monto       float64   `json:"monto"`
	Categoria   string    `json:"categoria"`
	Descripcion *string   `json:"descripcion,omitempty"` // Pointer for optional field
	Fecha       time.Time `json:"fecha"`
}

// CreateTransactionRequest is used for creating a new transaction.
// Any category from the combined set is accepted for either tipo; category
// fit per type is deliberately not enforced. Monto is a pointer so a
// zero amount passes validation while the field itself stays mandatory.
type CreateTransactionRequest struct {
	Tipo        string   `json:"tipo" binding:"required,oneof=ingreso gasto"`
	Monto       *float64 `json:"monto" binding:"required,gte=0"`
	Categoria   string   `json:"categoria" binding:"required,oneof=salario freelance ventas inversiones otros_ingresos alimentacion transporte vivienda entretenimiento salud educacion compras servicios otros_gastos"`
	Descripcion *string  `json:"descripcion"`
}

// TransactionFilters contains filter parameters for transaction queries
type TransactionFilters struct {
	Tipo  *string
	Desde *time.Time // inclusive lower bound on fecha
}
