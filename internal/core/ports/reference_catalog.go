package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// CategoryRef is a service category as known to the reference catalog.
type CategoryRef struct {
	ID   kernel.UUID
	Name string
}

// AreaRef is a geographic area as known to the reference catalog.
type AreaRef struct {
	ID   kernel.UUID
	Name string
}

// ReferenceCatalog resolves category and area references against the lookup
// tables. Orders may only point at entries that exist here.
type ReferenceCatalog interface {
	// VerifyCategories checks that every given category exists. Returns
	// errs.ObjectNotFoundError naming the first missing one.
	VerifyCategories(ctx context.Context, ids []kernel.UUID) error

	// VerifyArea checks that the given area exists.
	VerifyArea(ctx context.Context, id kernel.UUID) error

	// Categories lists all known categories.
	Categories(ctx context.Context) ([]CategoryRef, error)

	// Areas lists all known areas.
	Areas(ctx context.Context) ([]AreaRef, error)
}
