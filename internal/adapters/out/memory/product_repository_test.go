package memory_test

import (
	"testing"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, quantity, decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	return p
}

func TestProductRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())

	stored, err := repo.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)
	assert.False(t, stored.ID().IsZero())

	loaded, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "Laptop", loaded.Name())
	assert.Equal(t, 10, loaded.Quantity())
	assert.True(t, loaded.Price().Equal(decimal.RequireFromString("10.5")))

	byName, err := repo.GetByName(ctx, "Laptop")
	require.NoError(t, err)
	assert.True(t, byName.IsEqual(stored))
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())
	stored, err := repo.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)

	require.NoError(t, stored.ReduceQuantity(5))

	loaded, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.Quantity())
}

func TestProductRepository_AddRejectsDuplicateName(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())
	_, err := repo.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)

	_, err = repo.Add(ctx, newProduct(t, "Laptop", 1))

	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestProductRepository_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.GetByName(ctx, "Nothing")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	unknown, err := product.RestoreProduct(kernel.NewUUID(), "Ghost", 1, decimal.NewFromInt(1))
	require.NoError(t, err)
	_, err = repo.Update(ctx, unknown)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	deleted, err := repo.Delete(ctx, kernel.NewUUID())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())
	stored, err := repo.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)

	require.NoError(t, stored.IncreaseQuantity(5))
	updated, err := repo.Update(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity())

	loaded, err := repo.Get(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, 15, loaded.Quantity())
}

func TestProductRepository_ListAndListInStock(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())
	for _, p := range []*product.Product{
		newProduct(t, "Mouse", 3),
		newProduct(t, "Cable", 0),
		newProduct(t, "Laptop", 1),
	} {
		_, err := repo.Add(ctx, p)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cable", "Laptop", "Mouse"}, names(all))

	inStock, err := repo.ListInStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Mouse"}, names(inStock))
}

func TestProductRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewProductRepository(memory.NewStore())
	stored, err := repo.Add(ctx, newProduct(t, "Laptop", 10))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, stored.ID())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(ctx, stored.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func names(products []*product.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name())
	}
	return out
}
