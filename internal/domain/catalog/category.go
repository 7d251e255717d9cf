package catalog

import (
	"github.com/retailnet/backend/internal/domain/shared"
)

// Category is a catalog-wide product grouping. Identity on ingestion is the
// (external id, name) pair supplied by the feed; shops are attached additively
// as they upload goods in the category.
type Category struct {
	shared.BaseEntity
	ExternalID int64   `gorm:"not null;uniqueIndex:idx_category_ext_name,priority:1"`
	Name       string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_ext_name,priority:2"`
	Shops      []*Shop `gorm:"many2many:shop_categories"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category from feed-supplied identity
func NewCategory(externalID int64, name string) (*Category, error) {
	if externalID <= 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category id must be positive")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category name cannot be empty")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		ExternalID: externalID,
		Name:       name,
	}, nil
}
