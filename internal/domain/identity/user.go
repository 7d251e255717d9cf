package identity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/retailnet/backend/internal/domain/shared"
)

// UserType distinguishes buyers from supplier (shop) users
type UserType string

const (
	UserTypeBuyer UserType = "buyer"
	UserTypeShop  UserType = "shop"
)

// IsValid checks if the user type is known
func (t UserType) IsValid() bool {
	return t == UserTypeBuyer || t == UserTypeShop
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// User is an account identified by email. Buyers own baskets and orders;
// shop users may upload feeds and query orders against their shops.
type User struct {
	shared.BaseAggregateRoot
	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName    string   `gorm:"type:varchar(100);not null"`
	LastName     string   `gorm:"type:varchar(100);not null"`
	Company      string   `gorm:"type:varchar(100)"`
	Position     string   `gorm:"type:varchar(100)"`
	Type         UserType `gorm:"type:varchar(10);not null;default:'buyer'"`
	PasswordHash string   `gorm:"type:varchar(100);not null"`
	IsActive     bool     `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account. Email format is validated at the
// request boundary; here only domain invariants are enforced.
func NewUser(email, firstName, lastName, company, position string, userType UserType) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First and last name cannot be empty")
	}
	if !userType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "User type must be buyer or shop")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Company:           company,
		Position:          position,
		Type:              userType,
		IsActive:          true,
	}, nil
}

// IsShop returns true for supplier users
func (u *User) IsShop() bool {
	return u.Type == UserTypeShop
}

// SetPassword validates the password against the policy and stores its bcrypt hash
func (u *User) SetPassword(raw string) error {
	if err := ValidatePassword(raw); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// VerifyPassword checks a raw password against the stored hash
func (u *User) VerifyPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}

// ValidatePassword enforces the password policy: minimum length and not
// entirely numeric.
func ValidatePassword(raw string) error {
	if len(raw) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters long")
	}
	numeric := true
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be entirely numeric")
	}
	return nil
}
