package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailnet/backend/internal/domain/shared"
)

// Product is the catalog-wide product identity. Deduplication key is the
// (name, category) pair - re-ingesting the same pair reuses the row.
type Product struct {
	shared.BaseEntity
	Name       string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_product_name_category,priority:1"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_name_category,priority:2"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product within a category
func NewProduct(name string, categoryID uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		CategoryID: categoryID,
	}, nil
}

// ProductInfo is a shop-specific sellable listing of a product. Rows for a
// shop are replaced wholesale on every ingestion - no stale listings survive.
type ProductInfo struct {
	shared.BaseEntity
	ProductID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	ShopID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	ExternalID int64              `gorm:"not null"` // supplier's own SKU id, not globally unique
	Model      string             `gorm:"type:varchar(100)"`
	Price      decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	PriceRRC   decimal.Decimal    `gorm:"type:decimal(18,2);not null"` // recommended retail price
	Quantity   int                `gorm:"not null"`
	Product    *Product           `gorm:"foreignKey:ProductID"`
	Shop       *Shop              `gorm:"foreignKey:ShopID"`
	Parameters []ProductParameter `gorm:"foreignKey:ProductInfoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductInfo) TableName() string {
	return "product_infos"
}

// NewProductInfo creates a new shop listing for a product
func NewProductInfo(productID, shopID uuid.UUID, externalID int64, model string, price, priceRRC decimal.Decimal, quantity int) (*ProductInfo, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop ID cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if priceRRC.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Recommended retail price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &ProductInfo{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		ShopID:     shopID,
		ExternalID: externalID,
		Model:      model,
		Price:      price,
		PriceRRC:   priceRRC,
		Quantity:   quantity,
	}, nil
}

// AddParameter attaches a parameter value to the listing. At most one value
// per (listing, parameter) pair.
func (pi *ProductInfo) AddParameter(parameterID uuid.UUID, value string) (*ProductParameter, error) {
	if parameterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARAMETER", "Parameter ID cannot be empty")
	}
	for idx := range pi.Parameters {
		if pi.Parameters[idx].ParameterID == parameterID {
			return nil, shared.NewDomainError("DUPLICATE_PARAMETER", "Parameter already set for this listing")
		}
	}

	pp := ProductParameter{
		BaseEntity:    shared.NewBaseEntity(),
		ProductInfoID: pi.ID,
		ParameterID:   parameterID,
		Value:         value,
	}
	pi.Parameters = append(pi.Parameters, pp)
	return &pi.Parameters[len(pi.Parameters)-1], nil
}

// Parameter is a global attribute name shared across all products,
// e.g. "color" or "weight".
type Parameter struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Parameter) TableName() string {
	return "parameters"
}

// NewParameter creates a new global parameter
func NewParameter(name string) (*Parameter, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PARAMETER", "Parameter name cannot be empty")
	}
	return &Parameter{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// ProductParameter holds one parameter value for one listing
type ProductParameter struct {
	shared.BaseEntity
	ProductInfoID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_listing_parameter,priority:1"`
	ParameterID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_listing_parameter,priority:2"`
	Value         string     `gorm:"type:varchar(255);not null"`
	Parameter     *Parameter `gorm:"foreignKey:ParameterID"`
}

// TableName returns the table name for GORM
func (ProductParameter) TableName() string {
	return "product_parameters"
}
