package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/shared"
)

// Contact is a delivery address owned by exactly one user
type Contact struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	City      string    `gorm:"type:varchar(100);not null"`
	Street    string    `gorm:"type:varchar(150);not null"`
	House     string    `gorm:"type:varchar(20);not null"`
	Structure string    `gorm:"type:varchar(20)"`
	Building  string    `gorm:"type:varchar(20)"`
	Apartment string    `gorm:"type:varchar(20)"`
	Phone     string    `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a new contact for a user
func NewContact(userID uuid.UUID, city, street, house, phone string) (*Contact, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if city == "" || street == "" || house == "" || phone == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "City, street, house and phone are required")
	}

	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		City:       city,
		Street:     street,
		House:      house,
		Phone:      phone,
	}, nil
}

// ContactUpdate carries a partial update; nil fields are left unchanged
type ContactUpdate struct {
	City      *string
	Street    *string
	House     *string
	Structure *string
	Building  *string
	Apartment *string
	Phone     *string
}

// Apply applies a partial update to the contact
func (c *Contact) Apply(upd ContactUpdate) error {
	if upd.City != nil {
		if *upd.City == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "City cannot be empty")
		}
		c.City = *upd.City
	}
	if upd.Street != nil {
		if *upd.Street == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Street cannot be empty")
		}
		c.Street = *upd.Street
	}
	if upd.House != nil {
		if *upd.House == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "House cannot be empty")
		}
		c.House = *upd.House
	}
	if upd.Structure != nil {
		c.Structure = *upd.Structure
	}
	if upd.Building != nil {
		c.Building = *upd.Building
	}
	if upd.Apartment != nil {
		c.Apartment = *upd.Apartment
	}
	if upd.Phone != nil {
		if *upd.Phone == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Phone cannot be empty")
		}
		c.Phone = *upd.Phone
	}
	c.UpdatedAt = time.Now()
	return nil
}
