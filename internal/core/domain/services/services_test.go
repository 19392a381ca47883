package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	addr, err := order.NewAddress("12 Main St", kernel.NewUUID())
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "fix the sink",
		[]kernel.UUID{kernel.NewUUID()}, addr, nil, false, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func newBidOn(t *testing.T, o *order.Order) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(
		kernel.NewUUID(), o.ID(), kernel.NewUUID(),
		100, "", bid.DefaultLimits(), time.Now(),
	)
	require.NoError(t, err)
	return b
}

func TestApprovalService_Approve(t *testing.T) {
	svc := services.NewApprovalService()

	t.Run("couples both transitions", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)

		evts, err := svc.Approve(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.Approved, b.Status())
		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.ApprovedBid().IsEqual(b.ID()))
		require.Len(t, evts, 1)
		assert.Equal(t, "bid.approved", evts[0].Name())
	})

	t.Run("second approval on the same order fails", func(t *testing.T) {
		o := newOrder(t)
		first := newBidOn(t, o)
		second := newBidOn(t, o)
		_, err := svc.Approve(o, first)
		require.NoError(t, err)

		_, err = svc.Approve(o, second)

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
		assert.Equal(t, bid.Placed, second.Status())
	})

	t.Run("bid from another order is rejected", func(t *testing.T) {
		o := newOrder(t)
		other := newOrder(t)
		b := newBidOn(t, other)

		_, err := svc.Approve(o, b)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestApprovalService_Reject(t *testing.T) {
	svc := services.NewApprovalService()

	t.Run("rejecting a placed bid leaves the order alone", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)

		evts, err := svc.Reject(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.Rejected, b.Status())
		assert.Equal(t, order.Placed, o.Status())
		require.Len(t, evts, 1)
		assert.Equal(t, "bid.rejected", evts[0].Name())
	})

	t.Run("rejecting the approved bid reopens the order", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := svc.Approve(o, b)
		require.NoError(t, err)

		_, err = svc.Reject(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.Rejected, b.Status())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.ApprovedBid())
	})

	t.Run("rejecting twice fails", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := svc.Reject(o, b)
		require.NoError(t, err)

		_, err = svc.Reject(o, b)

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
	})
}

func TestWithdrawalService_Withdraw(t *testing.T) {
	svc := services.NewWithdrawalService()
	approval := services.NewApprovalService()

	t.Run("placed bid is removed", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)

		evts, err := svc.Withdraw(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.Removed, b.Status())
		assert.Equal(t, order.Placed, o.Status())
		require.Len(t, evts, 1)
		assert.Equal(t, "bid.withdrawn", evts[0].Name())
	})

	t.Run("rejected bid is removed", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Reject(o, b)
		require.NoError(t, err)

		_, err = svc.Withdraw(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.Removed, b.Status())
	})

	t.Run("approved bid on in-progress order reopens the order", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Approve(o, b)
		require.NoError(t, err)

		_, err = svc.Withdraw(o, b)

		require.NoError(t, err)
		assert.Equal(t, bid.TerminatedByProvider, b.Status())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.ApprovedBid())
	})

	t.Run("approved bid on completed order is archived only", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Approve(o, b)
		require.NoError(t, err)
		require.NoError(t, o.Complete())

		evts, err := svc.Withdraw(o, b)

		require.NoError(t, err)
		assert.Empty(t, evts)
		assert.Equal(t, bid.Approved, b.Status())
		assert.True(t, b.Archived())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("terminated bid cannot be withdrawn", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		require.NoError(t, b.TerminateByClient())

		_, err := svc.Withdraw(o, b)

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
	})
}

func TestRemovalService_Remove(t *testing.T) {
	svc := services.NewRemovalService()
	approval := services.NewApprovalService()

	t.Run("placed order removal terminates active bids", func(t *testing.T) {
		o := newOrder(t)
		b1 := newBidOn(t, o)
		b2 := newBidOn(t, o)
		require.NoError(t, b2.Reject())

		evts, err := svc.Remove(o, []*bid.Bid{b1, b2})

		require.NoError(t, err)
		assert.Equal(t, order.Removed, o.Status())
		assert.Equal(t, bid.TerminatedByClient, b1.Status())
		assert.Equal(t, bid.TerminatedByClient, b2.Status())
		require.Len(t, evts, 1)
		assert.Equal(t, "order.cancelled", evts[0].Name())
	})

	t.Run("in-progress order removal terminates the approved bid", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Approve(o, b)
		require.NoError(t, err)

		_, err = svc.Remove(o, []*bid.Bid{b})

		require.NoError(t, err)
		assert.Equal(t, order.TerminatedByClient, o.Status())
		assert.Equal(t, bid.TerminatedByClient, b.Status())
	})

	t.Run("in-progress order removal leaves rejected bids alone", func(t *testing.T) {
		o := newOrder(t)
		rejected := newBidOn(t, o)
		require.NoError(t, rejected.Reject())
		approved := newBidOn(t, o)
		_, err := approval.Approve(o, approved)
		require.NoError(t, err)

		_, err = svc.Remove(o, []*bid.Bid{approved, rejected})

		require.NoError(t, err)
		assert.Equal(t, order.TerminatedByClient, o.Status())
		assert.Equal(t, bid.TerminatedByClient, approved.Status())
		assert.Equal(t, bid.Rejected, rejected.Status())
	})

	t.Run("completed order removal archives instead", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Approve(o, b)
		require.NoError(t, err)
		require.NoError(t, o.Complete())

		evts, err := svc.Remove(o, []*bid.Bid{b})

		require.NoError(t, err)
		assert.Empty(t, evts)
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Archived())
		assert.True(t, b.Archived())
	})

	t.Run("already terminated bids are skipped", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		require.NoError(t, b.TerminateByClient())

		_, err := svc.Remove(o, []*bid.Bid{b})

		require.NoError(t, err)
		assert.Equal(t, bid.TerminatedByClient, b.Status())
	})
}

func TestRemovalService_Expire(t *testing.T) {
	svc := services.NewRemovalService()

	t.Run("archives lapsed placed order and terminates bids", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		after := o.ExpiresAt().Add(time.Minute)

		require.NoError(t, svc.Expire(o, []*bid.Bid{b}, after))

		assert.True(t, o.Archived())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, bid.TerminatedByClient, b.Status())
	})

	t.Run("rejects order still open", func(t *testing.T) {
		o := newOrder(t)

		err := svc.Expire(o, nil, time.Now())

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
		assert.False(t, o.Archived())
	})

	t.Run("rejects non-placed order", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := services.NewApprovalService().Approve(o, b)
		require.NoError(t, err)

		err = svc.Expire(o, nil, o.ExpiresAt().Add(time.Hour))

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
	})
}

func TestCompletionService_Complete(t *testing.T) {
	svc := services.NewCompletionService()
	approval := services.NewApprovalService()

	t.Run("completes order and archives the approved bid", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)
		_, err := approval.Approve(o, b)
		require.NoError(t, err)

		evts, err := svc.Complete(o, b)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, bid.Approved, b.Status())
		assert.True(t, b.Archived())
		require.Len(t, evts, 1)
		assert.Equal(t, "order.completed", evts[0].Name())
	})

	t.Run("fails on a placed order", func(t *testing.T) {
		o := newOrder(t)
		b := newBidOn(t, o)

		_, err := svc.Complete(o, b)

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
	})
}
