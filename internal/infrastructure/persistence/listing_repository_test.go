package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
)

func TestShopRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()

	seedShop(t, db, uuid.New(), "Svyaznoy")
	seedShop(t, db, uuid.New(), "Euroset")
	closed := seedShop(t, db, uuid.New(), "Closed Shop")
	closed.Close()
	require.NoError(t, repo.Save(ctx, closed))

	t.Run("closed shops are hidden", func(t *testing.T) {
		shops, err := repo.FindActive(ctx, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, shops, 2)
		assert.Equal(t, "Euroset", shops[0].Name)
		assert.Equal(t, "Svyaznoy", shops[1].Name)
	})

	t.Run("search matches case-insensitively", func(t *testing.T) {
		shops, err := repo.FindActive(ctx, shared.Filter{Search: "svya"})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, "Svyaznoy", shops[0].Name)
	})

	t.Run("pagination slices the result", func(t *testing.T) {
		shops, err := repo.FindActive(ctx, shared.Filter{Page: 2, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, "Svyaznoy", shops[0].Name)
	})
}

func TestShopRepository_FindByOwnerAndName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()
	seedShop(t, db, ownerID, "Svyaznoy")

	shop, err := repo.FindByOwnerAndName(ctx, ownerID, "Svyaznoy")
	require.NoError(t, err)
	assert.Equal(t, ownerID, shop.OwnerUserID)

	_, err = repo.FindByOwnerAndName(ctx, uuid.New(), "Svyaznoy")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListingRepository_FindListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	open := seedShop(t, db, uuid.New(), "Svyaznoy")
	phone := seedListing(t, db, open, "iPhone XS Max")
	caseListing := seedListing(t, db, open, "Leather case")

	hidden := seedShop(t, db, uuid.New(), "Closed Shop")
	hidden.Close()
	require.NoError(t, db.Save(hidden).Error)
	seedListing(t, db, hidden, "Ghost product")

	t.Run("only open shops are listed", func(t *testing.T) {
		listings, err := repo.FindListings(ctx, catalog.ListingFilter{})
		require.NoError(t, err)
		require.Len(t, listings, 2)
		require.NotNil(t, listings[0].Product)
		require.NotNil(t, listings[0].Shop)
	})

	t.Run("filter by shop", func(t *testing.T) {
		listings, err := repo.FindListings(ctx, catalog.ListingFilter{ShopID: &hidden.ID})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("filter by category", func(t *testing.T) {
		var product catalog.Product
		require.NoError(t, db.First(&product, "id = ?", phone.ProductID).Error)

		listings, err := repo.FindListings(ctx, catalog.ListingFilter{CategoryID: &product.CategoryID})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, phone.ID, listings[0].ID)
	})

	t.Run("search matches product name case-insensitively", func(t *testing.T) {
		listings, err := repo.FindListings(ctx, catalog.ListingFilter{Search: "LEATHER"})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, caseListing.ID, listings[0].ID)
	})

	t.Run("search misses return empty", func(t *testing.T) {
		listings, err := repo.FindListings(ctx, catalog.ListingFilter{Search: "no such thing"})
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestListingRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	shop := seedShop(t, db, uuid.New(), "Svyaznoy")
	listing := seedListing(t, db, shop, "iPhone XS Max")

	found, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
