package basket

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/order"
	"github.com/retailnet/backend/internal/domain/shared"
)

// Service manages the per-user basket. All mutations resolve the basket
// through the repository's get-or-create, so a basket row appears on first
// write; reads never create one.
type Service struct {
	orders   order.Repository
	listings catalog.ListingRepository
	logger   *zap.Logger
}

// NewService creates a new basket service
func NewService(orders order.Repository, listings catalog.ListingRepository, logger *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		listings: listings,
		logger:   logger,
	}
}

// GetBasket returns the user's basket. A user without a basket row gets an
// empty basket view.
func (s *Service) GetBasket(ctx context.Context, userID uuid.UUID) (*BasketResponse, error) {
	basket, err := s.orders.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			empty := BasketResponse{Items: []ItemResponse{}}
			return &empty, nil
		}
		s.logger.Error("Failed to load basket", zap.Error(err))
		return nil, err
	}
	resp := ToBasketResponse(basket)
	return &resp, nil
}

// AddItems appends line items to the basket in request order. Each line is
// validated and inserted independently; on the first failure the call stops
// and returns the error, leaving earlier lines committed. The count of lines
// inserted before the failure is reported alongside the error.
func (s *Service) AddItems(ctx context.Context, userID uuid.UUID, items []ItemInput) (*MutationResult, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items list cannot be empty")
	}

	basket, err := s.orders.GetOrCreateBasket(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to resolve basket", zap.Error(err))
		return nil, err
	}

	result := &MutationResult{}
	for _, in := range items {
		if in.Quantity <= 0 {
			return result, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
		}
		if _, err := s.listings.FindByID(ctx, in.ProductInfoID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return result, shared.NewDomainError("UNKNOWN_LISTING", "Listing does not exist")
			}
			return result, err
		}

		exists, err := s.orders.ItemExists(ctx, basket.ID, in.ProductInfoID)
		if err != nil {
			return result, err
		}
		if exists {
			return result, shared.NewDomainError("DUPLICATE_ITEM", "Listing already added to the basket")
		}

		item, err := order.NewOrderItem(basket.ID, in.ProductInfoID, in.Quantity)
		if err != nil {
			return result, err
		}
		if err := s.orders.AddItem(ctx, item); err != nil {
			s.logger.Error("Failed to add basket item",
				zap.String("listing_id", in.ProductInfoID.String()),
				zap.Error(err))
			return result, err
		}
		result.Created++
	}

	return result, nil
}

// RemoveItems bulk-deletes basket lines by listing ID. Listings not present
// in the basket are ignored; the result carries the count actually deleted.
func (s *Service) RemoveItems(ctx context.Context, userID uuid.UUID, productInfoIDs []uuid.UUID) (*MutationResult, error) {
	if len(productInfoIDs) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items list cannot be empty")
	}

	basket, err := s.orders.GetOrCreateBasket(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to resolve basket", zap.Error(err))
		return nil, err
	}

	deleted, err := s.orders.RemoveItems(ctx, basket.ID, productInfoIDs)
	if err != nil {
		s.logger.Error("Failed to remove basket items", zap.Error(err))
		return nil, err
	}
	return &MutationResult{Deleted: deleted}, nil
}

// UpdateQuantities sets new quantities for the given basket lines. Every
// entry in the list is processed; entries for listings not in the basket
// update nothing and are reflected only in the final count.
func (s *Service) UpdateQuantities(ctx context.Context, userID uuid.UUID, items []ItemInput) (*MutationResult, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items list cannot be empty")
	}

	basket, err := s.orders.GetOrCreateBasket(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to resolve basket", zap.Error(err))
		return nil, err
	}

	result := &MutationResult{}
	for _, in := range items {
		if in.Quantity <= 0 {
			return result, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
		}
		updated, err := s.orders.UpdateItemQuantity(ctx, basket.ID, in.ProductInfoID, in.Quantity)
		if err != nil {
			s.logger.Error("Failed to update basket item",
				zap.String("listing_id", in.ProductInfoID.String()),
				zap.Error(err))
			return result, err
		}
		result.Updated += updated
	}
	return result, nil
}
