package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
)

// GormListingRepository implements the public listing read side using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// FindByID finds a listing by ID
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductInfo, error) {
	var listing catalog.ProductInfo
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// FindListings finds listings of active shops matching the filter, with
// product, category, shop and parameters loaded
func (r *GormListingRepository) FindListings(ctx context.Context, filter catalog.ListingFilter) ([]catalog.ProductInfo, error) {
	var listings []catalog.ProductInfo

	query := r.db.WithContext(ctx).
		Model(&catalog.ProductInfo{}).
		Joins("JOIN shops ON shops.id = product_infos.shop_id AND shops.state = ?", true).
		Joins("JOIN products ON products.id = product_infos.product_id").
		Preload("Product").
		Preload("Product.Category").
		Preload("Shop").
		Preload("Parameters").
		Preload("Parameters.Parameter")

	if filter.ShopID != nil {
		query = query.Where("product_infos.shop_id = ?", *filter.ShopID)
	}
	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(product_infos.model) LIKE ?", pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("products.name ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// Ensure GormListingRepository implements ListingRepository
var _ catalog.ListingRepository = (*GormListingRepository)(nil)
