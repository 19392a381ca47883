package bid_test

import (
	"strings"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedBid(t *testing.T, amount int64) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		amount, "can start tomorrow", bid.DefaultLimits(), time.Now(),
	)
	require.NoError(t, err)
	return b
}

func TestNewBid(t *testing.T) {
	now := time.Now()

	t.Run("creates placed bid with empty history", func(t *testing.T) {
		b := placedBid(t, 100)

		require.NoError(t, b.Validate())
		assert.Equal(t, bid.Placed, b.Status())
		assert.Equal(t, int64(100), b.Amount())
		assert.Empty(t, b.PrevAmounts())
		assert.False(t, b.Archived())
		assert.True(t, b.IsActive())
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -5} {
			_, err := bid.NewBid(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				amount, "", bid.DefaultLimits(), now,
			)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("fails with over-long comment", func(t *testing.T) {
		limits := bid.DefaultLimits()

		_, err := bid.NewBid(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			100, strings.Repeat("x", limits.MaxCommentLength+1), limits, now,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails without order reference", func(t *testing.T) {
		_, err := bid.NewBid(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			100, "", bid.DefaultLimits(), now,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreBid(t *testing.T) {
	now := time.Now()

	t.Run("restores history and status as stored", func(t *testing.T) {
		b, err := bid.RestoreBid(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			120, "", []int64{100, 150}, false, bid.Approved, now,
		)

		require.NoError(t, err)
		assert.Equal(t, bid.Approved, b.Status())
		assert.Equal(t, []int64{100, 150}, b.PrevAmounts())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := bid.RestoreBid(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			120, "", nil, false, bid.Status(42), now,
		)

		require.Error(t, err)
	})
}

func TestBid_ReviseAmount(t *testing.T) {
	t.Run("appends superseded amounts oldest first", func(t *testing.T) {
		b := placedBid(t, 100)

		require.NoError(t, b.ReviseAmount(150))
		require.NoError(t, b.ReviseAmount(120))

		assert.Equal(t, int64(120), b.Amount())
		assert.Equal(t, []int64{100, 150}, b.PrevAmounts())
	})

	t.Run("same amount is a no-op", func(t *testing.T) {
		b := placedBid(t, 100)

		require.NoError(t, b.ReviseAmount(100))

		assert.Empty(t, b.PrevAmounts())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		b := placedBid(t, 100)

		err := b.ReviseAmount(0)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, int64(100), b.Amount())
	})

	t.Run("rejected on terminal bid", func(t *testing.T) {
		b := placedBid(t, 100)
		require.NoError(t, b.Remove())

		err := b.ReviseAmount(150)

		assert.ErrorIs(t, err, errs.ErrActionNotAllowed)
	})

	t.Run("history slice is copied, not aliased", func(t *testing.T) {
		b := placedBid(t, 100)
		require.NoError(t, b.ReviseAmount(150))

		history := b.PrevAmounts()
		history[0] = 999

		assert.Equal(t, []int64{100}, b.PrevAmounts())
	})
}

func TestBid_Lifecycle(t *testing.T) {
	t.Run("approve then terminate by provider", func(t *testing.T) {
		b := placedBid(t, 100)

		require.NoError(t, b.Approve())
		require.NoError(t, b.TerminateByProvider())

		assert.Equal(t, bid.TerminatedByProvider, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("approve then reject reopens nothing here", func(t *testing.T) {
		b := placedBid(t, 100)

		require.NoError(t, b.Approve())
		require.NoError(t, b.Reject())

		assert.Equal(t, bid.Rejected, b.Status())
	})

	t.Run("remove after rejection", func(t *testing.T) {
		b := placedBid(t, 100)
		require.NoError(t, b.Reject())

		require.NoError(t, b.Remove())

		assert.Equal(t, bid.Removed, b.Status())
	})

	t.Run("archive keeps status but deactivates", func(t *testing.T) {
		b := placedBid(t, 100)
		require.NoError(t, b.Approve())

		b.Archive()

		assert.Equal(t, bid.Approved, b.Status())
		assert.True(t, b.Archived())
		assert.False(t, b.IsActive())
	})
}

func TestBid_SetComment(t *testing.T) {
	b := placedBid(t, 100)

	t.Run("replaces comment within limit", func(t *testing.T) {
		require.NoError(t, b.SetComment("updated offer", bid.DefaultLimits()))

		assert.Equal(t, "updated offer", b.Comment())
	})

	t.Run("rejects over-long comment", func(t *testing.T) {
		limits := bid.Limits{MaxCommentLength: 10}

		err := b.SetComment(strings.Repeat("x", 11), limits)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestBid_Validate(t *testing.T) {
	t.Run("nil bid fails", func(t *testing.T) {
		var b *bid.Bid

		assert.Equal(t, bid.ErrBidIsNotConstructed, b.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var b bid.Bid

		assert.Equal(t, bid.ErrBidIsNotConstructed, b.Validate())
	})
}
