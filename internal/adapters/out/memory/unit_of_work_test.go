package memory_test

import (
	"testing"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Commit(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store)

	require.NoError(t, uow.Begin(ctx))
	stored, err := uow.ProductRepository().Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)
	_, err = uow.OrderRepository().Add(ctx, order.NewOrder())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	loaded, err := memory.NewProductRepository(store).Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Quantity())

	orders, err := memory.NewOrderRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUnitOfWork_RollbackRestoresState(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	laptop, err := products.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)

	uow := memory.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))

	inTx, err := uow.ProductRepository().Get(ctx, laptop.ID())
	require.NoError(t, err)
	require.NoError(t, inTx.ReduceQuantity(4))
	_, err = uow.ProductRepository().Update(ctx, inTx)
	require.NoError(t, err)
	_, err = uow.ProductRepository().Add(ctx, newProduct(t, "Mouse", 1))
	require.NoError(t, err)
	_, err = uow.OrderRepository().Add(ctx, order.NewOrder())
	require.NoError(t, err)

	require.NoError(t, uow.Rollback(ctx))

	loaded, err := products.Get(ctx, laptop.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Quantity())

	all, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	orders, err := memory.NewOrderRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUnitOfWork_Lifecycle(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWork(memory.NewStore())

	require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.ErrorIs(t, uow.Begin(ctx), memory.ErrTransactionAlreadyStarted)
	require.NoError(t, uow.Commit(ctx))

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
}
