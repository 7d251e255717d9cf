package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/retailnet/backend/internal/domain/catalog"
)

// GormIngestionStore implements the transactional feed ingestion write path.
// The whole catalog swap runs in one transaction: a failure at any point
// leaves the shop's previous listings untouched.
type GormIngestionStore struct {
	db *gorm.DB
}

// NewGormIngestionStore creates a new GormIngestionStore
func NewGormIngestionStore(db *gorm.DB) *GormIngestionStore {
	return &GormIngestionStore{db: db}
}

// ReplaceShopCatalog resolves the shop by (owner, feed.Shop), upserts the
// feed's categories, wipes the shop's listings and rebuilds them from the
// feed. Returns the number of listings created.
func (s *GormIngestionStore) ReplaceShopCatalog(ctx context.Context, ownerUserID uuid.UUID, feed *catalog.Feed) (int, error) {
	created := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shop, err := s.resolveShop(tx, ownerUserID, feed.Shop)
		if err != nil {
			return err
		}

		categories, err := s.upsertCategories(tx, shop, feed.Categories)
		if err != nil {
			return err
		}

		if err := s.wipeListings(tx, shop.ID); err != nil {
			return err
		}

		for _, good := range feed.Goods {
			if err := s.createListing(tx, shop, categories, good); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// resolveShop finds the owner's shop by name, creating it on first upload
func (s *GormIngestionStore) resolveShop(tx *gorm.DB, ownerUserID uuid.UUID, name string) (*catalog.Shop, error) {
	var shop catalog.Shop
	err := tx.Where("owner_user_id = ? AND name = ?", ownerUserID, name).First(&shop).Error
	if err == nil {
		return &shop, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh, err := catalog.NewShop(ownerUserID, name)
	if err != nil {
		return nil, err
	}
	if err := tx.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

// upsertCategories resolves each feed category by (external id, name) and
// attaches the shop to it. Returns categories keyed by external id.
func (s *GormIngestionStore) upsertCategories(tx *gorm.DB, shop *catalog.Shop, feedCategories []catalog.FeedCategory) (map[int64]*catalog.Category, error) {
	categories := make(map[int64]*catalog.Category, len(feedCategories))

	for _, fc := range feedCategories {
		var cat catalog.Category
		err := tx.Where("external_id = ? AND name = ?", fc.ID, fc.Name).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fresh, cerr := catalog.NewCategory(fc.ID, fc.Name)
			if cerr != nil {
				return nil, cerr
			}
			if cerr := tx.Create(fresh).Error; cerr != nil {
				return nil, cerr
			}
			cat = *fresh
		} else if err != nil {
			return nil, err
		}

		if err := tx.Model(&cat).Association("Shops").Append(shop); err != nil {
			return nil, err
		}
		categories[fc.ID] = &cat
	}
	return categories, nil
}

// wipeListings removes the shop's listings and their parameter values. The
// parameter values go first so the wipe does not depend on database-level
// cascade behaviour.
func (s *GormIngestionStore) wipeListings(tx *gorm.DB, shopID uuid.UUID) error {
	sub := tx.Model(&catalog.ProductInfo{}).Select("id").Where("shop_id = ?", shopID)
	if err := tx.Where("product_info_id IN (?)", sub).Delete(&catalog.ProductParameter{}).Error; err != nil {
		return err
	}
	return tx.Where("shop_id = ?", shopID).Delete(&catalog.ProductInfo{}).Error
}

// createListing resolves the product identity and inserts one listing with
// its parameter values
func (s *GormIngestionStore) createListing(tx *gorm.DB, shop *catalog.Shop, categories map[int64]*catalog.Category, good catalog.FeedGood) error {
	cat := categories[*good.Category]

	product, err := s.resolveProduct(tx, good.Name, cat.ID)
	if err != nil {
		return err
	}

	listing, err := catalog.NewProductInfo(
		product.ID,
		shop.ID,
		good.ID,
		good.Model,
		decimal.NewFromFloat(*good.Price),
		decimal.NewFromFloat(*good.PriceRRC),
		*good.Quantity,
	)
	if err != nil {
		return err
	}

	for name, value := range good.Parameters {
		param, perr := s.resolveParameter(tx, name)
		if perr != nil {
			return perr
		}
		if _, perr := listing.AddParameter(param.ID, value); perr != nil {
			return perr
		}
	}

	return tx.Create(listing).Error
}

// resolveProduct finds or creates the (name, category) product identity
func (s *GormIngestionStore) resolveProduct(tx *gorm.DB, name string, categoryID uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := tx.Where("name = ? AND category_id = ?", name, categoryID).First(&product).Error
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh, err := catalog.NewProduct(name, categoryID)
	if err != nil {
		return nil, err
	}
	if err := tx.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

// resolveParameter finds or creates a global parameter by name
func (s *GormIngestionStore) resolveParameter(tx *gorm.DB, name string) (*catalog.Parameter, error) {
	var param catalog.Parameter
	err := tx.Where("name = ?", name).First(&param).Error
	if err == nil {
		return &param, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh, err := catalog.NewParameter(name)
	if err != nil {
		return nil, err
	}
	if err := tx.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

// Ensure GormIngestionStore implements IngestionStore
var _ catalog.IngestionStore = (*GormIngestionStore)(nil)
