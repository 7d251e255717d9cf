package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindForUser finds a contact by ID scoped to its owner
func (r *GormContactRepository) FindForUser(ctx context.Context, userID, id uuid.UUID) (*identity.Contact, error) {
	var contact identity.Contact
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindAllForUser lists a user's contacts
func (r *GormContactRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]identity.Contact, error) {
	var contacts []identity.Contact
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountForUser counts a user's contacts
func (r *GormContactRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&identity.Contact{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Create inserts a new contact
func (r *GormContactRepository) Create(ctx context.Context, contact *identity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Save updates an existing contact
func (r *GormContactRepository) Save(ctx context.Context, contact *identity.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// DeleteForUser deletes a contact scoped to its owner
func (r *GormContactRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&identity.Contact{})
	return result.RowsAffected, result.Error
}

// Ensure GormContactRepository implements ContactRepository
var _ identity.ContactRepository = (*GormContactRepository)(nil)
