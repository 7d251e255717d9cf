package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/shared"
)

// ShopRepository defines the interface for shop persistence
type ShopRepository interface {
	// FindByID finds a shop by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)

	// FindByOwnerAndName finds a shop by its natural identity
	FindByOwnerAndName(ctx context.Context, ownerUserID uuid.UUID, name string) (*Shop, error)

	// FindActive finds all shops currently accepting orders
	FindActive(ctx context.Context, filter shared.Filter) ([]Shop, error)

	// Save creates or updates a shop
	Save(ctx context.Context, shop *Shop) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
}

// ListingFilter holds query options for the public product listing
type ListingFilter struct {
	Search     string // matches product name or listing model
	ShopID     *uuid.UUID
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

// ListingRepository defines the read interface for shop listings
type ListingRepository interface {
	// FindByID finds a listing by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ProductInfo, error)

	// FindListings finds listings of active shops matching the filter,
	// with product, category and parameters loaded
	FindListings(ctx context.Context, filter ListingFilter) ([]ProductInfo, error)
}

// IngestionStore is the transactional write interface used by feed ingestion.
// ReplaceShopCatalog resolves the shop by (owner, feed.Shop), upserts the
// feed's categories, attaches the shop to them, wipes the shop's listings and
// rebuilds them from the feed - all inside one database transaction. It
// returns the number of listings created.
type IngestionStore interface {
	ReplaceShopCatalog(ctx context.Context, ownerUserID uuid.UUID, feed *Feed) (int, error)
}
