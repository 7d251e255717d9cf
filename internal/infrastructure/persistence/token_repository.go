package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

// GormTokenRepository implements TokenRepository using GORM
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GormTokenRepository
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// GetOrCreate returns the user's token, generating a key only when no token
// exists yet. The insert ignores a conflicting row so two concurrent first
// logins converge on one key.
func (r *GormTokenRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, keygen func() (string, error)) (*identity.AuthToken, error) {
	var token identity.AuthToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := keygen()
	if err != nil {
		return nil, err
	}
	fresh, err := identity.NewAuthToken(userID, key)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	// Re-read in case the conflict path dropped our insert
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByKey resolves a token key
func (r *GormTokenRepository) FindByKey(ctx context.Context, key string) (*identity.AuthToken, error) {
	var token identity.AuthToken
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// Ensure GormTokenRepository implements TokenRepository
var _ identity.TokenRepository = (*GormTokenRepository)(nil)
