package service

import (
	"context"
	"sort"

	"finanzas_tracker/internal/model"
)

// fakeTransactionRepo is an in-memory TransactionRepository for service tests.
type fakeTransactionRepo struct {
	transactions []model.Transaction
	createErr    error
	findErr      error
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context, filters model.TransactionFilters) ([]model.Transaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []model.Transaction
	for _, t := range f.transactions {
		if filters.Tipo != nil && t.Tipo != *filters.Tipo {
			continue
		}
		if filters.Desde != nil && t.Fecha.Before(*filters.Desde) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindRecent(_ context.Context, limit int) ([]model.Transaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.Transaction, len(f.transactions))
	copy(out, f.transactions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeCashCountRepo is an in-memory CashCountRepository for service tests.
type fakeCashCountRepo struct {
	counts    []model.CashCount
	createErr error
	findErr   error
}

func (f *fakeCashCountRepo) Create(_ context.Context, c *model.CashCount) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.counts = append(f.counts, *c)
	return nil
}

func (f *fakeCashCountRepo) FindAll(_ context.Context) ([]model.CashCount, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.counts, nil
}
