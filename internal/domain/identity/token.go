package identity

import (
	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/shared"
)

// AuthToken is an opaque bearer token bound to one user. Issuance is
// get-or-create: one active key per user, never rotated by this core.
type AuthToken struct {
	shared.BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Key    string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// NewAuthToken creates a token record for a user
func NewAuthToken(userID uuid.UUID, key string) (*AuthToken, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if key == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Token key cannot be empty")
	}
	return &AuthToken{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Key:        key,
	}, nil
}
