package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailnet/backend/internal/domain/catalog"
)

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID int64     `json:"external_id"`
	Name       string    `json:"name"`
}

// ShopResponse is the public view of a shop
type ShopResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	URL   string    `json:"url,omitempty"`
	State bool      `json:"state"`
}

// ListingResponse is the public view of one shop listing
type ListingResponse struct {
	ID         uuid.UUID           `json:"id"`
	Model      string              `json:"model,omitempty"`
	ExternalID int64               `json:"external_id"`
	Price      decimal.Decimal     `json:"price"`
	PriceRRC   decimal.Decimal     `json:"price_rrc"`
	Quantity   int                 `json:"quantity"`
	Product    ListingProduct      `json:"product"`
	Shop       ShopResponse        `json:"shop"`
	Parameters []ListingParameter  `json:"parameters"`
}

// ListingProduct is the product identity embedded in a listing view
type ListingProduct struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

// ListingParameter is one attribute value embedded in a listing view
type ListingParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IngestResult reports the outcome of a feed ingestion
type IngestResult struct {
	Shop            string `json:"shop"`
	ListingsCreated int    `json:"listings_created"`
}

// ToCategoryResponse maps a category to its public view
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		ExternalID: c.ExternalID,
		Name:       c.Name,
	}
}

// ToShopResponse maps a shop to its public view
func ToShopResponse(s *catalog.Shop) ShopResponse {
	return ShopResponse{
		ID:    s.ID,
		Name:  s.Name,
		URL:   s.URL,
		State: s.State,
	}
}

// ToListingResponse maps a listing with its loaded associations
func ToListingResponse(pi *catalog.ProductInfo) ListingResponse {
	resp := ListingResponse{
		ID:         pi.ID,
		Model:      pi.Model,
		ExternalID: pi.ExternalID,
		Price:      pi.Price,
		PriceRRC:   pi.PriceRRC,
		Quantity:   pi.Quantity,
		Parameters: make([]ListingParameter, 0, len(pi.Parameters)),
	}
	if pi.Product != nil {
		resp.Product = ListingProduct{
			ID:   pi.Product.ID,
			Name: pi.Product.Name,
		}
		if pi.Product.Category != nil {
			resp.Product.Category = pi.Product.Category.Name
		}
	}
	if pi.Shop != nil {
		resp.Shop = ToShopResponse(pi.Shop)
	}
	for idx := range pi.Parameters {
		p := &pi.Parameters[idx]
		name := ""
		if p.Parameter != nil {
			name = p.Parameter.Name
		}
		resp.Parameters = append(resp.Parameters, ListingParameter{Name: name, Value: p.Value})
	}
	return resp
}
