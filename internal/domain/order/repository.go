package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence.
//
// Basket resolution is centralized here: GetOrCreateBasket is the single
// entry point for the per-user basket invariant instead of ad-hoc queries.
type Repository interface {
	// GetOrCreateBasket returns the user's basket order, creating it lazily.
	// Implementations take a row-level lock on the basket row so concurrent
	// mutations of the same basket serialize at the store.
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*Order, error)

	// FindBasket returns the user's basket with items loaded, or ErrNotFound.
	// It is read-only and never creates a basket.
	FindBasket(ctx context.Context, userID uuid.UUID) (*Order, error)

	// ItemExists reports whether the order already has a line item for the listing
	ItemExists(ctx context.Context, orderID, productInfoID uuid.UUID) (bool, error)

	// AddItem inserts one line item
	AddItem(ctx context.Context, item *OrderItem) error

	// RemoveItems bulk-deletes the line items of the order matching any of the
	// given listing IDs and returns the number actually deleted. Missing pairs
	// are silently ignored.
	RemoveItems(ctx context.Context, orderID uuid.UUID, productInfoIDs []uuid.UUID) (int64, error)

	// UpdateItemQuantity updates the quantity of the (order, listing) line item
	// if present and returns the number of rows updated (0 or 1)
	UpdateItemQuantity(ctx context.Context, orderID, productInfoID uuid.UUID, quantity int) (int64, error)

	// Transition atomically flips the order from one state to another, scoped
	// to the owning user. Returns the number of rows updated: 0 means the
	// order does not exist, is not owned by the user, or is not in the
	// expected state - indistinguishable by design.
	Transition(ctx context.Context, userID, orderID uuid.UUID, from, to State) (int64, error)

	// FindSubmittedByUser returns the user's placed orders (state != basket)
	// with items, listings and categories loaded
	FindSubmittedByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// FindBySupplier returns placed orders containing at least one line item
	// whose listing belongs to a shop owned by the given user. Orders spanning
	// multiple shops are returned in full, not filtered per shop.
	FindBySupplier(ctx context.Context, shopOwnerUserID uuid.UUID) ([]Order, error)
}
