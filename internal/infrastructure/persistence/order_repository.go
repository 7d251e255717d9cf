package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retailnet/backend/internal/domain/order"
	"github.com/retailnet/backend/internal/domain/shared"
)

// GormOrderRepository implements order persistence using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// GetOrCreateBasket returns the user's basket order, creating it lazily.
// The returned row is selected FOR UPDATE inside a transaction so that two
// concurrent mutations of the same basket serialize here.
func (r *GormOrderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*order.Order, error) {
	var basket order.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND state = ?", userID, order.StateBasket).
			First(&basket).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fresh, err := order.NewBasket(userID)
		if err != nil {
			return err
		}
		if err := tx.Omit("Items").Create(fresh).Error; err != nil {
			return err
		}
		basket = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &basket, nil
}

// FindBasket returns the user's basket with items loaded, or ErrNotFound.
// Read-only: a user who never wrote to their basket has no row.
func (r *GormOrderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*order.Order, error) {
	var basket order.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductInfo").
		Preload("Items.ProductInfo.Product").
		Preload("Items.ProductInfo.Shop").
		Where("user_id = ? AND state = ?", userID, order.StateBasket).
		First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &basket, nil
}

// ItemExists reports whether the order already has a line item for the listing
func (r *GormOrderRepository) ItemExists(ctx context.Context, orderID, productInfoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Where("order_id = ? AND product_info_id = ?", orderID, productInfoID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddItem inserts one line item
func (r *GormOrderRepository) AddItem(ctx context.Context, item *order.OrderItem) error {
	return r.db.WithContext(ctx).Omit("ProductInfo").Create(item).Error
}

// RemoveItems bulk-deletes the order's line items matching any of the given
// listing IDs and returns the number actually deleted
func (r *GormOrderRepository) RemoveItems(ctx context.Context, orderID uuid.UUID, productInfoIDs []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND product_info_id IN ?", orderID, productInfoIDs).
		Delete(&order.OrderItem{})
	return result.RowsAffected, result.Error
}

// UpdateItemQuantity updates the quantity of the (order, listing) line item
// if present and returns the number of rows updated
func (r *GormOrderRepository) UpdateItemQuantity(ctx context.Context, orderID, productInfoID uuid.UUID, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Where("order_id = ? AND product_info_id = ?", orderID, productInfoID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// Transition atomically flips the order's state, scoped to owner and
// expected current state. Zero rows means missing, foreign or already moved.
func (r *GormOrderRepository) Transition(ctx context.Context, userID, orderID uuid.UUID, from, to order.State) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ? AND user_id = ? AND state = ?", orderID, userID, from).
		Updates(map[string]interface{}{
			"state":   to,
			"version": gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

// FindSubmittedByUser returns the user's placed orders with items, listings
// and categories loaded, newest first
func (r *GormOrderRepository) FindSubmittedByUser(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductInfo").
		Preload("Items.ProductInfo.Product").
		Preload("Items.ProductInfo.Product.Category").
		Preload("Items.ProductInfo.Shop").
		Where("user_id = ? AND state <> ?", userID, order.StateBasket).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindBySupplier returns placed orders containing at least one line item
// whose listing belongs to a shop owned by the given user. Orders are
// returned whole, including lines for other suppliers' shops.
func (r *GormOrderRepository) FindBySupplier(ctx context.Context, shopOwnerUserID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductInfo").
		Preload("Items.ProductInfo.Product").
		Preload("Items.ProductInfo.Product.Category").
		Preload("Items.ProductInfo.Shop").
		Where("orders.state <> ?", order.StateBasket).
		Where("orders.id IN (?)", r.db.
			Model(&order.OrderItem{}).
			Select("order_items.order_id").
			Joins("JOIN product_infos ON product_infos.id = order_items.product_info_id").
			Joins("JOIN shops ON shops.id = product_infos.shop_id").
			Where("shops.owner_user_id = ?", shopOwnerUserID)).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Ensure GormOrderRepository implements the order repository
var _ order.Repository = (*GormOrderRepository)(nil)
