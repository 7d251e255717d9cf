package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/shared"
)

// Shop represents a supplier's storefront. A supplier user owns at most one
// shop per name; re-ingestion with the same name reuses the same row.
type Shop struct {
	shared.BaseAggregateRoot
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_shop_owner_name,priority:2"`
	URL         string    `gorm:"type:varchar(255)"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shop_owner_name,priority:1"`
	State       bool      `gorm:"not null;default:true"` // accepting orders
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a new shop owned by the given supplier user
func NewShop(ownerUserID uuid.UUID, name string) (*Shop, error) {
	if ownerUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Shop owner cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot exceed 100 characters")
	}

	return &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		OwnerUserID:       ownerUserID,
		State:             true,
	}, nil
}

// SetURL sets the shop's public URL
func (s *Shop) SetURL(url string) {
	s.URL = url
	s.UpdatedAt = time.Now()
}

// Open marks the shop as accepting orders
func (s *Shop) Open() {
	s.State = true
	s.UpdatedAt = time.Now()
}

// Close marks the shop as not accepting orders
func (s *Shop) Close() {
	s.State = false
	s.UpdatedAt = time.Now()
}

// IsAcceptingOrders returns true if the shop is open for orders
func (s *Shop) IsAcceptingOrders() bool {
	return s.State
}
