package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/retailnet/backend/internal/application/catalog"
	apporder "github.com/retailnet/backend/internal/application/order"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
)

// PartnerHandler serves supplier-side endpoints: feed upload and the
// supplier order view. Both sit behind the shop-account guard.
type PartnerHandler struct {
	BaseHandler
	ingest *appcatalog.IngestService
	orders *apporder.Service
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(ingest *appcatalog.IngestService, orders *apporder.Service) *PartnerHandler {
	return &PartnerHandler{ingest: ingest, orders: orders}
}

// Upload handles POST /api/v1/partner/upload. The body is the raw feed
// document; a multipart form with a "file" field works as well.
func (h *PartnerHandler) Upload(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	payload, err := h.readFeed(c)
	if err != nil {
		h.BadRequest(c, "Failed to read feed payload: "+err.Error())
		return
	}
	if len(payload) == 0 {
		h.BadRequest(c, "Feed payload is empty")
		return
	}

	result, err := h.ingest.Ingest(c.Request.Context(), user.ID, payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Orders handles GET /api/v1/partner/orders
func (h *PartnerHandler) Orders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orders.ListSupplierOrders(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// readFeed extracts the feed document from either a multipart file field or
// the raw request body
func (h *PartnerHandler) readFeed(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}
