package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (login identity)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user
	Create(ctx context.Context, user *User) error

	// Save updates an existing user
	Save(ctx context.Context, user *User) error
}

// ContactRepository defines the interface for contact persistence
type ContactRepository interface {
	// FindForUser finds a contact by ID scoped to its owner
	FindForUser(ctx context.Context, userID, id uuid.UUID) (*Contact, error)

	// FindAllForUser lists a user's contacts
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]Contact, error)

	// CountForUser counts a user's contacts
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create inserts a new contact
	Create(ctx context.Context, contact *Contact) error

	// Save updates an existing contact
	Save(ctx context.Context, contact *Contact) error

	// DeleteForUser deletes a contact scoped to its owner and returns the
	// number of rows deleted
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// TokenRepository defines the interface for opaque bearer token persistence
type TokenRepository interface {
	// GetOrCreate returns the user's token, generating a new key via keygen
	// only when no token exists yet
	GetOrCreate(ctx context.Context, userID uuid.UUID, keygen func() (string, error)) (*AuthToken, error)

	// FindByKey resolves a token key, or ErrNotFound
	FindByKey(ctx context.Context, key string) (*AuthToken, error)
}
