package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailnet/backend/internal/domain/order"
)

// ItemResponse is the view of one order line
type ItemResponse struct {
	ProductInfoID uuid.UUID       `json:"product_info_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Category      string          `json:"category,omitempty"`
	Model         string          `json:"model,omitempty"`
	Shop          string          `json:"shop,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// OrderResponse is the view of a placed order
type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	State     string          `json:"state"`
	ContactID *uuid.UUID      `json:"contact_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []ItemResponse  `json:"items"`
	Total     decimal.Decimal `json:"total"`
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
			if item.ProductInfo.Product.Category != nil {
				resp.Category = item.ProductInfo.Product.Category.Name
			}
		}
		if item.ProductInfo.Shop != nil {
			resp.Shop = item.ProductInfo.Shop.Name
		}
	}
	return resp
}

// ToOrderResponse maps an order with its loaded items
func ToOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		State:     o.State.String(),
		ContactID: o.ContactID,
		CreatedAt: o.CreatedAt,
		Items:     make([]ItemResponse, 0, len(o.Items)),
		Total:     decimal.Zero,
	}
	for idx := range o.Items {
		item := ToItemResponse(&o.Items[idx])
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.LineTotal)
	}
	return resp
}

// ToOrderResponses maps a slice of orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for idx := range orders {
		out = append(out, ToOrderResponse(&orders[idx]))
	}
	return out
}
