package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apporder "github.com/retailnet/backend/internal/application/order"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves the buyer order endpoints
type OrderHandler struct {
	BaseHandler
	orders *apporder.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *apporder.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Submit handles POST /api/v1/orders/:id/submit
func (h *OrderHandler) Submit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orders.Submit(c.Request.Context(), user.ID, orderID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"id": orderID, "state": "new"})
}
