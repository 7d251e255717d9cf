package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/retailnet/backend/internal/application/catalog"
	"github.com/retailnet/backend/internal/domain/catalog"
	"github.com/retailnet/backend/internal/domain/shared"
	"github.com/retailnet/backend/internal/interfaces/http/dto"
)

// CatalogHandler serves the public catalog read endpoints
type CatalogHandler struct {
	BaseHandler
	catalog *appcatalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListingsRequest holds the query parameters for the product listing
type ListingsRequest struct {
	dto.ListRequest
	ShopID     string `form:"shop_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
}

// Categories handles GET /api/v1/catalog/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.Normalize()

	categories, err := h.catalog.ListCategories(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Shops handles GET /api/v1/catalog/shops
func (h *CatalogHandler) Shops(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.Normalize()

	shops, err := h.catalog.ListShops(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shops)
}

// Products handles GET /api/v1/catalog/products
func (h *CatalogHandler) Products(c *gin.Context) {
	var req ListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.Normalize()

	filter := catalog.ListingFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.ShopID != "" {
		id, _ := uuid.Parse(req.ShopID)
		filter.ShopID = &id
	}
	if req.CategoryID != "" {
		id, _ := uuid.Parse(req.CategoryID)
		filter.CategoryID = &id
	}

	listings, err := h.catalog.ListListings(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, listings)
}
