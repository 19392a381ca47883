// Package bidrepo provides data transfer objects and mapping functions for
// bid persistence.
package bidrepo

import (
	"time"

	"marketplace/internal/core/domain/model/bid"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BidDTO represents the database structure for persisting bid aggregates.
// The amount revision history is stored inline as a Postgres array, oldest
// first, matching the append-only semantics of the aggregate.
type BidDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID     `gorm:"type:uuid;index"`
	ProviderID  uuid.UUID     `gorm:"type:uuid;index"`
	Amount      int64         `gorm:"not null"`
	Comment     string        `gorm:""`
	PrevAmounts pq.Int64Array `gorm:"type:bigint[]"`
	Archived    bool          `gorm:"not null"`
	Status      int           `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "bids".
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid domain aggregate to its database representation.
func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		ProviderID:  aggregate.ProviderID().Bytes(),
		Amount:      aggregate.Amount(),
		Comment:     aggregate.Comment(),
		PrevAmounts: pq.Int64Array(aggregate.PrevAmounts()),
		Archived:    aggregate.Archived(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a bid aggregate using RestoreBid.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(
		id,
		orderID,
		providerID,
		dto.Amount,
		dto.Comment,
		dto.PrevAmounts,
		dto.Archived,
		bid.Status(dto.Status),
		dto.CreatedAt,
	)
}
