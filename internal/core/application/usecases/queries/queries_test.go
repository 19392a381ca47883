package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestQueryConstruction(t *testing.T) {
	t.Run("list client orders requires a client", func(t *testing.T) {
		_, err := queries.NewListClientOrdersQuery(kernel.UUID{}, nil, 1)
		require.Error(t, err)

		q, err := queries.NewListClientOrdersQuery(kernel.NewUUID(), []order.Status{order.Placed}, 1)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("list client orders rejects invalid status", func(t *testing.T) {
		_, err := queries.NewListClientOrdersQuery(kernel.NewUUID(), []order.Status{order.Status(42)}, 1)
		require.Error(t, err)
	})

	t.Run("search open orders requires a provider", func(t *testing.T) {
		_, err := queries.NewSearchOpenOrdersQuery(kernel.UUID{}, nil, nil, 1)
		require.Error(t, err)
	})

	t.Run("list order bids requires an order", func(t *testing.T) {
		_, err := queries.NewListOrderBidsQuery(kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("list provider bids rejects invalid status", func(t *testing.T) {
		_, err := queries.NewListProviderBidsQuery(kernel.NewUUID(), false, []bid.Status{bid.Status(42)}, 1)
		require.Error(t, err)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var q queries.ListOrderBidsQuery
		require.ErrorIs(t, q.Validate(), queries.ErrListOrderBidsQueryIsNotConstructed)
	})
}
