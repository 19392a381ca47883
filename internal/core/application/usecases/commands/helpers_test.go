package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	addr, err := order.NewAddress("12 Main St", kernel.NewUUID())
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), clientID, "fix the sink",
		[]kernel.UUID{kernel.NewUUID()}, addr, nil, false, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func testBid(t *testing.T, orderID, providerID kernel.UUID) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(
		kernel.NewUUID(), orderID, providerID,
		100, "", bid.DefaultLimits(), time.Now(),
	)
	require.NoError(t, err)
	return b
}
