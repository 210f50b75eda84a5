package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	laptop := newStoredProduct(t, "Laptop", 10, "999.99")

	t.Run("should compute total price", func(t *testing.T) {
		item, err := order.NewItem(laptop.Snapshot(), 2, decimal.RequireFromString("999.99"))

		require.NoError(t, err)
		assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("1999.98")))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(laptop.Snapshot(), 0, laptop.Price())

		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		_, err := order.NewItem(laptop.Snapshot(), 1, decimal.NewFromInt(-5))

		require.ErrorIs(t, err, errs.ErrInvalidPrice)
	})

	t.Run("should report both violations", func(t *testing.T) {
		_, err := order.NewItem(laptop.Snapshot(), -1, decimal.Zero)

		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
		require.ErrorIs(t, err, errs.ErrInvalidPrice)
	})
}
