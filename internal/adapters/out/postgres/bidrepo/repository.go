package bidrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBidRepository implements BidRepository using GORM.
type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBidRepository creates a new GORM bid repository.
func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

// mutableColumns are the bid columns an Update may change. Explicit selection
// forces zero values through, which plain Updates would silently skip.
var mutableColumns = []string{"amount", "comment", "prev_amounts", "archived", "status"}

// Add saves a new bid to the database.
func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bid to the database.
func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BidDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError(result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bid by ID.
func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", id.String())
		}
		return nil, errs.NewStoreUnavailableError(err)
	}

	return toDomain(dto)
}

// GetForOrderAndProvider retrieves the provider's non-removed bid on the
// order. Returns nil without error when the provider has none; placement
// keeps this unique per pair.
func (r *GormBidRepository) GetForOrderAndProvider(
	ctx context.Context,
	orderID, providerID kernel.UUID,
) (*bid.Bid, error) {
	if err := errors.Join(orderID.Validate(), providerID.Validate()); err != nil {
		return nil, err
	}

	var dto BidDTO
	err := r.db.WithContext(ctx).First(&dto,
		"order_id = ? AND provider_id = ? AND status <> ?",
		orderID.Bytes(), providerID.Bytes(), int(bid.Removed),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewStoreUnavailableError(err)
	}

	return toDomain(dto)
}

// GetAllActiveForOrder retrieves all bids on the order that are neither
// archived nor in a terminal status.
func (r *GormBidRepository) GetAllActiveForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*bid.Bid, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	terminal := []int{int(bid.Removed), int(bid.TerminatedByClient), int(bid.TerminatedByProvider)}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND archived = FALSE AND status NOT IN ?", orderID.Bytes(), terminal).
		Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}

	return bids, nil
}
