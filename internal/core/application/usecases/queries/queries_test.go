package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProductQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetProductQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ProductID().IsEqual(id))

	_, err = queries.NewGetProductQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(id))

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListProductsQuery(t *testing.T) {
	query := queries.NewListProductsQuery(true)
	require.NoError(t, query.Validate())
	assert.True(t, query.OnlyAvailable())
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("without status", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
	})

	t.Run("with status", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("confirmed")
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Confirmed, *query.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, queries.GetProductQuery{}.Validate(), queries.ErrGetProductQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListProductsQuery{}.Validate(), queries.ErrListProductsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
