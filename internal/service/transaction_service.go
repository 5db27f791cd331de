package service

import (
	"context"
	"fmt"
	"time"

	"finanzas_tracker/internal/model"
	"finanzas_tracker/internal/repository"

	"github.com/google/uuid"
)

// TransactionService defines ingestion and listing operations for
// transactions and cash counts
type TransactionService interface {
	CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	CreateCashCount(ctx context.Context, req model.CreateCashCountRequest) (*model.CashCount, error)
	ListCashCounts(ctx context.Context) ([]model.CashCount, error)
}

type transactionService struct {
	transactions repository.TransactionRepository
	cashCounts   repository.CashCountRepository
	now          func() time.Time
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions repository.TransactionRepository, cashCounts repository.CashCountRepository) TransactionService {
	return &transactionService{transactions: transactions, cashCounts: cashCounts, now: time.Now}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error) {
	transaction := &model.Transaction{
		ID:          uuid.NewString(),
		Tipo:        req.Tipo,
		Monto:       *req.Monto,
		Categoria:   req.Categoria,
		Descripcion: req.Descripcion,
		Fecha:       s.now().UTC(),
	}
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction in repo: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.transactions.FindAll(ctx, model.TransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions from repo: %w", err)
	}
	return transactions, nil
}

// CreateCashCount persists a denomination count and, when the counted total
// is positive, a companion income transaction for it. The two records share
// the timestamp and a derived description but no stored reference.
func (s *transactionService) CreateCashCount(ctx context.Context, req model.CreateCashCountRequest) (*model.CashCount, error) {
	count := &model.CashCount{
		ID:             uuid.NewString(),
		Billetes100000: req.Billetes100000,
		Billetes50000:  req.Billetes50000,
		Billetes20000:  req.Billetes20000,
		Billetes10000:  req.Billetes10000,
		Billetes5000:   req.Billetes5000,
		Billetes2000:   req.Billetes2000,
		Monedas1000:    req.Monedas1000,
		Monedas500:     req.Monedas500,
		Monedas200:     req.Monedas200,
		Monedas100:     req.Monedas100,
		Monedas50:      req.Monedas50,
		Total:          req.Total(),
		Descripcion:    req.Descripcion,
		Fecha:          s.now().UTC(),
	}
	if err := s.cashCounts.Create(ctx, count); err != nil {
		return nil, fmt.Errorf("failed to create cash count in repo: %w", err)
	}

	if count.Total > 0 {
		descripcion := "Conteo de efectivo"
		if req.Descripcion != nil && *req.Descripcion != "" {
			descripcion = "Conteo de efectivo: " + *req.Descripcion
		}
		companion := &model.Transaction{
			ID:          uuid.NewString(),
			Tipo:        model.TransactionTypeIngreso,
			Monto:       count.Total,
			Categoria:   model.CategoriaCashCount,
			Descripcion: &descripcion,
			Fecha:       count.Fecha,
		}
		if err := s.transactions.Create(ctx, companion); err != nil {
			return nil, fmt.Errorf("failed to create companion transaction for cash count: %w", err)
		}
	}
	return count, nil
}

func (s *transactionService) ListCashCounts(ctx context.Context) ([]model.CashCount, error) {
	counts, err := s.cashCounts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash counts from repo: %w", err)
	}
	return counts, nil
}
