package segmentation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// fakeSource fuente en memoria; err permite simular fallos de recarga.
type fakeSource struct {
	rows  []entity.Customer
	err   error
	calls int
}

func (f *fakeSource) Name() string { return "memory" }

func (f *fakeSource) Load(context.Context) ([]entity.Customer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

var errBoom = errors.New("boom")

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// sampleRows dataset pequeño con los tres segmentos y un cluster sin etiqueta.
//
//	Lost: C2, C5 · Core: C1, C4 · VIP: C3 · sin etiqueta: C6
func sampleRows() []entity.Customer {
	return []entity.Customer{
		entity.NewCustomer("C1", 10, 5, money("100.00"), 1),
		entity.NewCustomer("C2", 500, 1, money("20.00"), 0),
		entity.NewCustomer("C3", 5, 40, money("5000.00"), 2),
		entity.NewCustomer("C4", 20, 8, money("300.00"), 1),
		entity.NewCustomer("C5", 450, 2, money("30.00"), 0),
		entity.NewCustomer("C6", 100, 3, money("50.00"), 7),
	}
}

func loadedStore(t *testing.T) *segmentation.Store {
	t.Helper()
	store := segmentation.NewStore(&fakeSource{rows: sampleRows()})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)
	return store
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, money(want).Equal(got), "esperado %s, obtenido %s", want, got)
}
