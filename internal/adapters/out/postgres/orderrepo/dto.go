// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and the relational schema.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The fixed category set and the attachment list live in child tables keyed
// by the order ID.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID  `gorm:"type:uuid;index"`
	Description   string     `gorm:"not null"`
	AddressText   string     `gorm:"not null"`
	AreaID        uuid.UUID  `gorm:"type:uuid;index"`
	Budget        *int64     `gorm:""`
	Urgent        bool       `gorm:"not null"`
	ExpiresAt     time.Time  `gorm:"index"`
	ApprovedBidID *uuid.UUID `gorm:"type:uuid"`
	Archived      bool       `gorm:"not null"`
	Status        int        `gorm:"index"`
	CreatedAt     time.Time

	Categories []OrderCategoryDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Media      []OrderMediaDTO    `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderCategoryDTO is one row of the order's category set.
type OrderCategoryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName overrides GORM's default naming convention to use "order_categories".
func (OrderCategoryDTO) TableName() string {
	return "order_categories"
}

// OrderMediaDTO is one attachment row. Position preserves the upload order.
type OrderMediaDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Name     string    `gorm:"not null"`
	URL      string    `gorm:"not null"`
	MimeType string    `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "order_media".
func (OrderMediaDTO) TableName() string {
	return "order_media"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var approvedBidID *uuid.UUID
	if id := aggregate.ApprovedBid(); id != nil {
		raw := id.Bytes()
		approvedBidID = &raw
	}

	categories := make([]OrderCategoryDTO, 0, len(aggregate.CategoryIDs()))
	for _, categoryID := range aggregate.CategoryIDs() {
		categories = append(categories, OrderCategoryDTO{
			OrderID:    aggregate.ID().Bytes(),
			CategoryID: categoryID.Bytes(),
		})
	}

	media := make([]OrderMediaDTO, 0, len(aggregate.Media()))
	for i, file := range aggregate.Media() {
		media = append(media, OrderMediaDTO{
			OrderID:  aggregate.ID().Bytes(),
			Position: i,
			Name:     file.Name(),
			URL:      file.URL(),
			MimeType: file.MimeType(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ClientID:      aggregate.ClientID().Bytes(),
		Description:   aggregate.Description(),
		AddressText:   aggregate.Address().Text(),
		AreaID:        aggregate.Address().AreaID().Bytes(),
		Budget:        aggregate.Budget(),
		Urgent:        aggregate.Urgent(),
		ExpiresAt:     aggregate.ExpiresAt(),
		ApprovedBidID: approvedBidID,
		Archived:      aggregate.Archived(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		Categories:    categories,
		Media:         media,
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which re-checks the stored invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.AddressText, areaID)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]kernel.UUID, 0, len(dto.Categories))
	for _, row := range dto.Categories {
		categoryID, categoryErr := kernel.UUIDFromBytes(row.CategoryID[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	media := make([]order.MediaFile, 0, len(dto.Media))
	for _, row := range dto.Media {
		file, mediaErr := order.NewMediaFile(row.Name, row.URL, row.MimeType)
		if mediaErr != nil {
			return nil, mediaErr
		}
		media = append(media, file)
	}

	var approvedBidID *kernel.UUID
	if dto.ApprovedBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.ApprovedBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}
		approvedBidID = &bidID
	}

	return order.RestoreOrder(
		id,
		clientID,
		dto.Description,
		categoryIDs,
		address,
		dto.Budget,
		dto.Urgent,
		media,
		dto.ExpiresAt,
		approvedBidID,
		dto.Archived,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
