package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/repository"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/memory"
)

var key = entity.CountKey{Code: "7891234567890", Corridor: "A", Column: "1", Floor: "1", CountType: "LOJA"}

func TestRunLedger_CommitPublicaCambios(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.RunLedger(ctx, func(counts repository.CountRepository) error {
		return counts.Create(ctx, &entity.CountEntry{Key: key, Quantity: decimal.NewFromInt(3)})
	})
	require.NoError(t, err)

	got, err := store.Counts().GetByKeyForUpdate(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func TestRunLedger_ErrorDescartaCambios(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.RunLedger(ctx, func(counts repository.CountRepository) error {
		_ = counts.Create(ctx, &entity.CountEntry{Key: key, Quantity: decimal.NewFromInt(3)})
		return errors.New("falla")
	})
	require.Error(t, err)

	list, err := store.Counts().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunLedger_ContextoCanceladoNoPublica(t *testing.T) {
	store := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := store.RunLedger(ctx, func(counts repository.CountRepository) error {
		cancel()
		return counts.Create(ctx, &entity.CountEntry{Key: key})
	})
	assert.ErrorIs(t, err, context.Canceled)

	list, _ := store.Counts().List(context.Background())
	assert.Empty(t, list)
}

func TestCounts_ListDevuelveCopias(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Counts().Create(ctx, &entity.CountEntry{Key: key, Quantity: decimal.NewFromInt(1)}))

	list, err := store.Counts().List(ctx)
	require.NoError(t, err)
	list[0].Quantity = decimal.NewFromInt(99)

	again, err := store.Counts().List(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(again[0].Quantity))
}

func TestLots_CreateAsignaIDs(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	a := &entity.Lot{Products: []string{"x"}}
	b := &entity.Lot{Products: []string{"y"}}
	require.NoError(t, store.Lots().Create(ctx, a))
	require.NoError(t, store.Lots().Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	a.Products[0] = "mutado"
	list, err := store.Lots().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", list[0].Products[0])
}
