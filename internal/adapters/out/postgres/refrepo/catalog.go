// Package refrepo implements the reference catalog over the category and
// area lookup tables.
package refrepo

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryDTO is one row of the service category lookup table.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

// TableName overrides GORM's default naming convention to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// AreaDTO is one row of the geographic area lookup table.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

// TableName overrides GORM's default naming convention to use "areas".
func (AreaDTO) TableName() string {
	return "areas"
}

// GormReferenceCatalog resolves category and area references against the
// lookup tables.
type GormReferenceCatalog struct {
	db *gorm.DB
}

// NewGormReferenceCatalog creates a catalog over the given connection.
func NewGormReferenceCatalog(db *gorm.DB) *GormReferenceCatalog {
	return &GormReferenceCatalog{db: db}
}

// VerifyCategories checks that every given category exists, reporting the
// first missing one.
func (c *GormReferenceCatalog) VerifyCategories(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("categories")
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	var found []uuid.UUID
	err := c.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id IN ?", raw).
		Pluck("id", &found).Error
	if err != nil {
		return errs.NewStoreUnavailableError(err)
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	for i, id := range raw {
		if _, ok := known[id]; !ok {
			return errs.NewObjectNotFoundError("category", ids[i].String())
		}
	}

	return nil
}

// VerifyArea checks that the given area exists.
func (c *GormReferenceCatalog) VerifyArea(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var count int64
	err := c.db.WithContext(ctx).Model(&AreaDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return errs.NewStoreUnavailableError(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("area", id.String())
	}

	return nil
}

// Categories lists all known categories, sorted by name.
func (c *GormReferenceCatalog) Categories(ctx context.Context) ([]ports.CategoryRef, error) {
	var dtos []CategoryDTO
	if err := c.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	refs := make([]ports.CategoryRef, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ports.CategoryRef{ID: id, Name: dto.Name})
	}

	return refs, nil
}

// Areas lists all known areas, sorted by name.
func (c *GormReferenceCatalog) Areas(ctx context.Context) ([]ports.AreaRef, error) {
	var dtos []AreaDTO
	if err := c.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError(err)
	}

	refs := make([]ports.AreaRef, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ports.AreaRef{ID: id, Name: dto.Name})
	}

	return refs, nil
}
