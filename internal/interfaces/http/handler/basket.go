package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbasket "github.com/retailnet/backend/internal/application/basket"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
)

// BasketHandler serves the buyer basket endpoints
type BasketHandler struct {
	BaseHandler
	basket *appbasket.Service
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(basket *appbasket.Service) *BasketHandler {
	return &BasketHandler{basket: basket}
}

// BasketItemRequest is one requested basket line
type BasketItemRequest struct {
	ProductInfoID string `json:"product_info_id" binding:"required,uuid"`
	Quantity      int    `json:"quantity" binding:"required"`
}

// BasketItemsRequest is the request body for adding or updating lines
type BasketItemsRequest struct {
	Items []BasketItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BasketRemoveRequest is the request body for bulk line removal
type BasketRemoveRequest struct {
	Items []string `json:"items" binding:"required,min=1,dive,uuid"`
}

// Get handles GET /api/v1/basket
func (h *BasketHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	basket, err := h.basket.GetBasket(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, basket)
}

// Add handles POST /api/v1/basket
func (h *BasketHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, ok := h.bindItems(c)
	if !ok {
		return
	}

	result, err := h.basket.AddItems(c.Request.Context(), user.ID, items)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateQuantities handles PUT /api/v1/basket
func (h *BasketHandler) UpdateQuantities(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, ok := h.bindItems(c)
	if !ok {
		return
	}

	result, err := h.basket.UpdateQuantities(c.Request.Context(), user.ID, items)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Remove handles DELETE /api/v1/basket
func (h *BasketHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req BasketRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, raw := range req.Items {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid listing ID: "+raw)
			return
		}
		ids = append(ids, id)
	}

	result, err := h.basket.RemoveItems(c.Request.Context(), user.ID, ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// bindItems parses the shared add/update request body
func (h *BasketHandler) bindItems(c *gin.Context) ([]appbasket.ItemInput, bool) {
	var req BasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return nil, false
	}

	items := make([]appbasket.ItemInput, 0, len(req.Items))
	for _, in := range req.Items {
		id, err := uuid.Parse(in.ProductInfoID)
		if err != nil {
			h.BadRequest(c, "Invalid listing ID: "+in.ProductInfoID)
			return nil, false
		}
		items = append(items, appbasket.ItemInput{ProductInfoID: id, Quantity: in.Quantity})
	}
	return items, true
}
