package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

func createTestUser(t *testing.T, repo *GormUserRepository, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, "Jan", "Novak", "", "", identity.UserTypeBuyer)
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("sup3r-secret"))
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	created := createTestUser(t, repo, "buyer@example.com")

	t.Run("lookup normalizes case and whitespace", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "  Buyer@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	createTestUser(t, repo, "buyer@example.com")

	exists, err := repo.ExistsByEmail(ctx, "BUYER@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	created := createTestUser(t, repo, "buyer@example.com")

	user, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", user.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()
	created := createTestUser(t, repo, "buyer@example.com")

	created.IsActive = false
	require.NoError(t, repo.Save(ctx, created))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}
