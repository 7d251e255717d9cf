package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/order"
	"github.com/retailnet/backend/internal/domain/shared"
)

// Service handles order placement and the buyer and supplier order views
type Service struct {
	orders order.Repository
	logger *zap.Logger
}

// NewService creates a new order service
func NewService(orders order.Repository, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		logger: logger,
	}
}

// Submit places the user's basket as an order. The flip is a single
// state-scoped update: a missing order, someone else's order and an already
// placed order all come back as NOT_FOUND, revealing nothing about which.
func (s *Service) Submit(ctx context.Context, userID, orderID uuid.UUID) error {
	rows, err := s.orders.Transition(ctx, userID, orderID, order.StateBasket, order.StateNew)
	if err != nil {
		s.logger.Error("Failed to submit order",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return err
	}
	if rows == 0 {
		return shared.NewDomainError("NOT_FOUND", "Basket order not found")
	}

	s.logger.Info("Order placed",
		zap.String("order_id", orderID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// ListOrders returns the user's placed orders, newest first
func (s *Service) ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orders.FindSubmittedByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListSupplierOrders returns placed orders touching any shop owned by the
// user. An order spanning several shops is returned whole.
func (s *Service) ListSupplierOrders(ctx context.Context, shopOwnerUserID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orders.FindBySupplier(ctx, shopOwnerUserID)
	if err != nil {
		s.logger.Error("Failed to list supplier orders", zap.Error(err))
		return nil, err
	}
	return ToOrderResponses(orders), nil
}
