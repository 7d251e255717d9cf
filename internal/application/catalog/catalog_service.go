package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
)

// CatalogService serves the public read side of the catalog
type CatalogService struct {
	shops      catalog.ShopRepository
	categories catalog.CategoryRepository
	listings   catalog.ListingRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new catalog read service
func NewCatalogService(
	shops catalog.ShopRepository,
	categories catalog.CategoryRepository,
	listings catalog.ListingRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		shops:      shops,
		categories: categories,
		listings:   listings,
		logger:     logger,
	}
}

// ListCategories returns all known categories
func (s *CatalogService) ListCategories(ctx context.Context, filter shared.Filter) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(categories))
	for idx := range categories {
		out = append(out, ToCategoryResponse(&categories[idx]))
	}
	return out, nil
}

// ListShops returns shops currently accepting orders
func (s *CatalogService) ListShops(ctx context.Context, filter shared.Filter) ([]ShopResponse, error) {
	shops, err := s.shops.FindActive(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list shops", zap.Error(err))
		return nil, err
	}
	out := make([]ShopResponse, 0, len(shops))
	for idx := range shops {
		out = append(out, ToShopResponse(&shops[idx]))
	}
	return out, nil
}

// ListListings returns listings of active shops matching the filter
func (s *CatalogService) ListListings(ctx context.Context, filter catalog.ListingFilter) ([]ListingResponse, error) {
	listings, err := s.listings.FindListings(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	out := make([]ListingResponse, 0, len(listings))
	for idx := range listings {
		out = append(out, ToListingResponse(&listings[idx]))
	}
	return out, nil
}
