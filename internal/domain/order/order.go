package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
)

// State represents the lifecycle state of an order
type State string

const (
	StateBasket    State = "basket"
	StateNew       State = "new"
	StateConfirmed State = "confirmed"
	StateAssembled State = "assembled"
	StateSent      State = "sent"
	StateDelivered State = "delivered"
	StateCanceled  State = "canceled"
)

// IsValid checks if the state is a declared order state
func (s State) IsValid() bool {
	switch s {
	case StateBasket, StateNew, StateConfirmed, StateAssembled, StateSent, StateDelivered, StateCanceled:
		return true
	}
	return false
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// CanTransitionTo checks if the state can transition to the target state.
// Only basket->new is reachable through the exposed API surface; the rest of
// the chain is declared for fulfilment tooling.
func (s State) CanTransitionTo(target State) bool {
	switch s {
	case StateBasket:
		return target == StateNew
	case StateNew:
		return target == StateConfirmed || target == StateCanceled
	case StateConfirmed:
		return target == StateAssembled || target == StateCanceled
	case StateAssembled:
		return target == StateSent
	case StateSent:
		return target == StateDelivered
	case StateDelivered, StateCanceled:
		return false // terminal
	}
	return false
}

// OrderItem is a line item referencing one shop listing. Within one order the
// (order, product_info) pair is unique - duplicates are rejected, not merged.
type OrderItem struct {
	shared.BaseEntity
	OrderID       uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_order_listing,priority:1"`
	ProductInfoID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_order_listing,priority:2"`
	Quantity      int                  `gorm:"not null"`
	ProductInfo   *catalog.ProductInfo `gorm:"foreignKey:ProductInfoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new line item
func NewOrderItem(orderID, productInfoID uuid.UUID, quantity int) (*OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if productInfoID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Listing ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	return &OrderItem{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		ProductInfoID: productInfoID,
		Quantity:      quantity,
	}, nil
}

// UpdateQuantity updates the requested quantity. Line quantity is a requested
// amount only - it never touches shop stock.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// Order is the aggregate root for a buyer's basket and placed orders.
// At most one order with state=basket exists per user at any time.
type Order struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	State     State      `gorm:"type:varchar(20);not null;default:'basket';index"`
	ContactID *uuid.UUID `gorm:"type:uuid"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewBasket creates a new basket order for a user
func NewBasket(userID uuid.UUID) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		State:             StateBasket,
		Items:             make([]OrderItem, 0),
	}, nil
}

// IsBasket returns true if the order is still a mutable basket
func (o *Order) IsBasket() bool {
	return o.State == StateBasket
}

// AddItem adds a line item to the basket. A second item for the same listing
// is rejected with DUPLICATE_ITEM - quantities are never silently merged.
func (o *Order) AddItem(productInfoID uuid.UUID, quantity int) (*OrderItem, error) {
	if !o.IsBasket() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a placed order")
	}
	if o.ItemByListing(productInfoID) != nil {
		return nil, shared.NewDomainError("DUPLICATE_ITEM", "Listing already added to the basket")
	}

	item, err := NewOrderItem(o.ID, productInfoID, quantity)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()
	return &o.Items[len(o.Items)-1], nil
}

// Submit flips the basket to a placed order. Valid exactly once; a second
// submit fails because the state is no longer basket.
func (o *Order) Submit() error {
	if !o.State.CanTransitionTo(StateNew) {
		return shared.NewDomainError("INVALID_STATE", "Only a basket can be submitted")
	}
	o.State = StateNew
	o.IncrementVersion()
	return nil
}

// ItemByListing returns the line item for a listing, or nil
func (o *Order) ItemByListing(productInfoID uuid.UUID) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductInfoID == productInfoID {
			return &o.Items[idx]
		}
	}
	return nil
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}
