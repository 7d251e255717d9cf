package persistence

import (
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/order"
)

// setupTestDB opens an in-memory database with the full schema migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&identity.User{},
		&identity.AuthToken{},
		&identity.Contact{},
		&catalog.Shop{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Parameter{},
		&catalog.ProductInfo{},
		&catalog.ProductParameter{},
		&order.Order{},
		&order.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

var externalIDSeq atomic.Int64

func nextExternalID() int64 {
	return externalIDSeq.Add(1)
}

func seedShop(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *catalog.Shop {
	t.Helper()
	shop, err := catalog.NewShop(ownerID, name)
	require.NoError(t, err)
	require.NoError(t, db.Create(shop).Error)
	return shop
}

// seedListing creates a listing together with its category and product identity
func seedListing(t *testing.T, db *gorm.DB, shop *catalog.Shop, productName string) *catalog.ProductInfo {
	t.Helper()

	category, err := catalog.NewCategory(nextExternalID(), "Category for "+productName)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	product, err := catalog.NewProduct(productName, category.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	listing, err := catalog.NewProductInfo(product.ID, shop.ID, nextExternalID(), "",
		decimal.NewFromInt(100), decimal.NewFromInt(120), 10)
	require.NoError(t, err)
	require.NoError(t, db.Create(listing).Error)
	return listing
}

func seedBasket(t *testing.T, db *gorm.DB, userID uuid.UUID) *order.Order {
	t.Helper()
	basket, err := order.NewBasket(userID)
	require.NoError(t, err)
	require.NoError(t, db.Omit("Items").Create(basket).Error)
	return basket
}

func seedItem(t *testing.T, db *gorm.DB, orderID, productInfoID uuid.UUID, quantity int) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(orderID, productInfoID, quantity)
	require.NoError(t, err)
	require.NoError(t, db.Omit("ProductInfo").Create(item).Error)
	return item
}
