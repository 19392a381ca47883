package queries

import (
	"context"
	"strings"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BidSearchFilter holds the conditions a bid search matches against. Nil and
// empty fields are skipped.
type BidSearchFilter struct {
	OrderID         *kernel.UUID
	ProviderID      *kernel.UUID
	Statuses        []bid.Status
	ExcludeStatuses []bid.Status
	Archived        *bool
}

// BidSearch executes bid listings against the database in descending
// creation order. Bid searches have no aggregation strategy.
type BidSearch struct {
	db     *gorm.DB
	filter BidSearchFilter
}

// NewBidSearch creates a bid search over the given filter.
func NewBidSearch(db *gorm.DB, filter BidSearchFilter) *BidSearch {
	return &BidSearch{db: db, filter: filter}
}

func (s *BidSearch) conditions() (string, []any) {
	where := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if s.filter.OrderID != nil {
		where = append(where, "order_id = ?")
		args = append(args, s.filter.OrderID.Bytes())
	}
	if s.filter.ProviderID != nil {
		where = append(where, "provider_id = ?")
		args = append(args, s.filter.ProviderID.Bytes())
	}
	if len(s.filter.Statuses) > 0 {
		where = append(where, "status IN ?")
		args = append(args, intStatuses(s.filter.Statuses))
	}
	if len(s.filter.ExcludeStatuses) > 0 {
		where = append(where, "status NOT IN ?")
		args = append(args, intStatuses(s.filter.ExcludeStatuses))
	}
	if s.filter.Archived != nil {
		where = append(where, "archived = ?")
		args = append(args, *s.filter.Archived)
	}

	if len(where) == 0 {
		return "TRUE", args
	}
	return strings.Join(where, " AND "), args
}

// CountResults counts the bids matching the filter.
func (s *BidSearch) CountResults(ctx context.Context) (int, error) {
	where, args := s.conditions()

	var count int64
	err := s.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM bids WHERE "+where, args...).
		Scan(&count).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError(err)
	}

	return int(count), nil
}

// FindResults fetches one window of matching bids. A non-positive limit
// means the whole result set.
func (s *BidSearch) FindResults(ctx context.Context, offset, limit int) ([]BidView, error) {
	where, args := s.conditions()

	query := `
		SELECT
			id,
			order_id,
			provider_id,
			amount,
			comment,
			prev_amounts,
			status,
			archived,
			created_at
		FROM bids
		WHERE ` + where + `
		ORDER BY created_at DESC`
	query, args = applyWindow(query, args, offset, limit)

	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	views := make([]BidView, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			orderID     uuid.UUID
			providerID  uuid.UUID
			prevAmounts pq.Int64Array
			status      int
			view        BidView
		)

		err = rows.Scan(
			&id, &orderID, &providerID, &view.Amount, &view.Comment,
			&prevAmounts, &status, &view.Archived, &view.CreatedAt,
		)
		if err != nil {
			return nil, errs.NewStoreUnavailableError(err)
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.ProviderID, err = kernel.UUIDFromBytes(providerID[:]); err != nil {
			return nil, err
		}
		view.PrevAmounts = []int64(prevAmounts)
		view.Status = bid.Status(status)

		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	return views, nil
}

// AggregateResults is not implemented for bid searches.
func (s *BidSearch) AggregateResults(context.Context, int, int) ([]BidView, error) {
	return nil, errs.NewQueryUnsupportedError("BidSearch", "AggregateResults")
}

func intStatuses(statuses []bid.Status) []int {
	out := make([]int, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, int(st))
	}
	return out
}
