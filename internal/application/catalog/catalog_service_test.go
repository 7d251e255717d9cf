package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
)

// MockShopRepository is a mock implementation of ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByOwnerAndName(ctx context.Context, ownerUserID uuid.UUID, name string) (*catalog.Shop, error) {
	args := m.Called(ctx, ownerUserID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Shop), args.Error(1)
}

func (m *MockShopRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Shop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, shop *catalog.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

// MockListingRepository is a mock implementation of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductInfo), args.Error(1)
}

func (m *MockListingRepository) FindListings(ctx context.Context, filter catalog.ListingFilter) ([]catalog.ProductInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductInfo), args.Error(1)
}

func newCatalogService(shops *MockShopRepository, categories *MockCategoryRepository, listings *MockListingRepository) *CatalogService {
	return NewCatalogService(shops, categories, listings, zap.NewNop())
}

func TestListShops(t *testing.T) {
	shops := new(MockShopRepository)
	service := newCatalogService(shops, new(MockCategoryRepository), new(MockListingRepository))

	shop, err := catalog.NewShop(uuid.New(), "Svyaznoy")
	require.NoError(t, err)
	shops.On("FindActive", mock.Anything, shared.Filter{Search: "svya"}).Return([]catalog.Shop{*shop}, nil)

	out, err := service.ListShops(context.Background(), shared.Filter{Search: "svya"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Svyaznoy", out[0].Name)
	assert.True(t, out[0].State)
}

func TestListCategories(t *testing.T) {
	categories := new(MockCategoryRepository)
	service := newCatalogService(new(MockShopRepository), categories, new(MockListingRepository))

	cat, err := catalog.NewCategory(224, "Smartphones")
	require.NoError(t, err)
	categories.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Category{*cat}, nil)

	out, err := service.ListCategories(context.Background(), shared.Filter{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(224), out[0].ExternalID)
	assert.Equal(t, "Smartphones", out[0].Name)
}

func TestListListings(t *testing.T) {
	listings := new(MockListingRepository)
	service := newCatalogService(new(MockShopRepository), new(MockCategoryRepository), listings)

	shop, err := catalog.NewShop(uuid.New(), "Svyaznoy")
	require.NoError(t, err)
	cat, err := catalog.NewCategory(224, "Smartphones")
	require.NoError(t, err)
	product, err := catalog.NewProduct("iPhone XS Max", cat.ID)
	require.NoError(t, err)
	product.Category = cat

	listing, err := catalog.NewProductInfo(product.ID, shop.ID, 4216292, "apple/iphone/xs-max",
		decimal.NewFromInt(110000), decimal.NewFromInt(116990), 14)
	require.NoError(t, err)
	listing.Product = product
	listing.Shop = shop

	listings.On("FindListings", mock.Anything, mock.Anything).Return([]catalog.ProductInfo{*listing}, nil)

	out, err := service.ListListings(context.Background(), catalog.ListingFilter{})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "iPhone XS Max", out[0].Product.Name)
	assert.Equal(t, "Smartphones", out[0].Product.Category)
	assert.Equal(t, "Svyaznoy", out[0].Shop.Name)
	assert.Equal(t, 14, out[0].Quantity)
}
