package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderSearchFilter holds the conditions an order search matches against.
// Nil and empty fields are skipped.
type OrderSearchFilter struct {
	ClientID        *kernel.UUID
	ExcludeClientID *kernel.UUID
	Statuses        []order.Status
	CategoryIDs     []kernel.UUID
	AreaIDs         []kernel.UUID
	IncludeArchived bool
}

// OrderSearch executes order listings against the database. Results come in
// descending creation order. The aggregated variant joins per-order bid
// statistics: the number of open bids and the lowest open offer.
type OrderSearch struct {
	db     *gorm.DB
	filter OrderSearchFilter
}

// NewOrderSearch creates an order search over the given filter.
func NewOrderSearch(db *gorm.DB, filter OrderSearchFilter) *OrderSearch {
	return &OrderSearch{db: db, filter: filter}
}

func (s *OrderSearch) conditions(alias string) (string, []any) {
	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	where := make([]string, 0, 6)
	args := make([]any, 0, 6)

	if !s.filter.IncludeArchived {
		where = append(where, col("archived")+" = FALSE")
	}
	if s.filter.ClientID != nil {
		where = append(where, col("client_id")+" = ?")
		args = append(args, s.filter.ClientID.Bytes())
	}
	if s.filter.ExcludeClientID != nil {
		where = append(where, col("client_id")+" <> ?")
		args = append(args, s.filter.ExcludeClientID.Bytes())
	}
	if len(s.filter.Statuses) > 0 {
		statuses := make([]int, 0, len(s.filter.Statuses))
		for _, st := range s.filter.Statuses {
			statuses = append(statuses, int(st))
		}
		where = append(where, col("status")+" IN ?")
		args = append(args, statuses)
	}
	if len(s.filter.CategoryIDs) > 0 {
		where = append(where,
			col("id")+" IN (SELECT order_id FROM order_categories WHERE category_id IN ?)")
		args = append(args, uuidValues(s.filter.CategoryIDs))
	}
	if len(s.filter.AreaIDs) > 0 {
		where = append(where, col("area_id")+" IN ?")
		args = append(args, uuidValues(s.filter.AreaIDs))
	}

	if len(where) == 0 {
		return "TRUE", args
	}
	return strings.Join(where, " AND "), args
}

// CountResults counts the orders matching the filter.
func (s *OrderSearch) CountResults(ctx context.Context) (int, error) {
	where, args := s.conditions("")

	var count int64
	err := s.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&count).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError(err)
	}

	return int(count), nil
}

// FindResults fetches one window of matching orders. A non-positive limit
// means the whole result set.
func (s *OrderSearch) FindResults(ctx context.Context, offset, limit int) ([]OrderView, error) {
	where, args := s.conditions("")

	query := `
		SELECT
			id,
			client_id,
			description,
			address_text,
			area_id,
			budget,
			urgent,
			status,
			archived,
			expires_at,
			created_at
		FROM orders
		WHERE ` + where + `
		ORDER BY created_at DESC`
	query, args = applyWindow(query, args, offset, limit)

	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrderView(rows, false)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	return views, nil
}

// AggregateResults fetches one window of matching orders enriched with bid
// statistics. Only still-placed bids count towards them.
func (s *OrderSearch) AggregateResults(ctx context.Context, offset, limit int) ([]OrderView, error) {
	where, args := s.conditions("o")

	query := `
		SELECT
			o.id,
			o.client_id,
			o.description,
			o.address_text,
			o.area_id,
			o.budget,
			o.urgent,
			o.status,
			o.archived,
			o.expires_at,
			o.created_at,
			COUNT(b.id) AS bid_count,
			MIN(b.amount) AS lowest_bid
		FROM orders o
		LEFT JOIN bids b ON b.order_id = o.id AND b.status = ? AND b.archived = FALSE
		WHERE ` + where + `
		GROUP BY o.id
		ORDER BY o.created_at DESC`
	args = append([]any{int(bid.Placed)}, args...)
	query, args = applyWindow(query, args, offset, limit)

	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrderView(rows, true)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	return views, nil
}

func scanOrderView(rows *sql.Rows, aggregated bool) (OrderView, error) {
	var (
		id        uuid.UUID
		clientID  uuid.UUID
		areaID    uuid.UUID
		budget    sql.NullInt64
		status    int
		view      OrderView
		bidCount  int64
		lowestBid sql.NullInt64
	)

	dest := []any{
		&id, &clientID, &view.Description, &view.AddressText, &areaID,
		&budget, &view.Urgent, &status, &view.Archived,
		&view.ExpiresAt, &view.CreatedAt,
	}
	if aggregated {
		dest = append(dest, &bidCount, &lowestBid)
	}

	if err := rows.Scan(dest...); err != nil {
		return OrderView{}, errs.NewStoreUnavailableError(err)
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderView{}, err
	}
	if view.AreaID, err = kernel.UUIDFromBytes(areaID[:]); err != nil {
		return OrderView{}, err
	}
	if budget.Valid {
		view.Budget = &budget.Int64
	}
	view.Status = order.Status(status)
	if aggregated {
		view.BidCount = int(bidCount)
		if lowestBid.Valid {
			view.LowestBid = &lowestBid.Int64
		}
	}

	return view, nil
}

func uuidValues(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func applyWindow(query string, args []any, offset, limit int) (string, []any) {
	if limit <= 0 {
		return query, args
	}
	query += fmt.Sprintf("\n\t\tLIMIT %d OFFSET %d", limit, offset)
	return query, args
}
