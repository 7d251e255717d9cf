package basket

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailnet/backend/internal/domain/order"
)

// ItemInput is one requested basket line
type ItemInput struct {
	ProductInfoID uuid.UUID
	Quantity      int
}

// ItemResponse is the view of one basket line
type ItemResponse struct {
	ProductInfoID uuid.UUID       `json:"product_info_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Model         string          `json:"model,omitempty"`
	Shop          string          `json:"shop,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// BasketResponse is the view of the user's basket. A user who never added
// anything gets an empty basket, not an error.
type BasketResponse struct {
	ID    *uuid.UUID      `json:"id,omitempty"`
	Items []ItemResponse  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// MutationResult reports how many lines a bulk basket operation touched
type MutationResult struct {
	Created int   `json:"created,omitempty"`
	Deleted int64 `json:"deleted,omitempty"`
	Updated int64 `json:"updated,omitempty"`
}

// ToItemResponse maps a line item with its loaded listing
func ToItemResponse(item *order.OrderItem) ItemResponse {
	resp := ItemResponse{
		ProductInfoID: item.ProductInfoID,
		Quantity:      item.Quantity,
	}
	if item.ProductInfo != nil {
		resp.Model = item.ProductInfo.Model
		resp.Price = item.ProductInfo.Price
		resp.LineTotal = item.ProductInfo.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if item.ProductInfo.Product != nil {
			resp.ProductName = item.ProductInfo.Product.Name
		}
		if item.ProductInfo.Shop != nil {
			resp.Shop = item.ProductInfo.Shop.Name
		}
	}
	return resp
}

// ToBasketResponse maps a basket order to its view
func ToBasketResponse(o *order.Order) BasketResponse {
	resp := BasketResponse{
		Items: make([]ItemResponse, 0, len(o.Items)),
		Total: decimal.Zero,
	}
	if o.ID != uuid.Nil {
		id := o.ID
		resp.ID = &id
	}
	for idx := range o.Items {
		item := ToItemResponse(&o.Items[idx])
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.LineTotal)
	}
	return resp
}
