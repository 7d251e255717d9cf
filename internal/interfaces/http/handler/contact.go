package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/retailnet/backend/internal/application/identity"
	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
)

// ContactHandler handles delivery contact CRUD
type ContactHandler struct {
	BaseHandler
	contacts *appidentity.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts *appidentity.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// CreateContactRequest is the request body for creating a contact
type CreateContactRequest struct {
	City      string `json:"city" binding:"required"`
	Street    string `json:"street" binding:"required"`
	House     string `json:"house" binding:"required"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone" binding:"required"`
}

// UpdateContactRequest is the request body for a partial contact update
type UpdateContactRequest struct {
	City      *string `json:"city"`
	Street    *string `json:"street"`
	House     *string `json:"house"`
	Structure *string `json:"structure"`
	Building  *string `json:"building"`
	Apartment *string `json:"apartment"`
	Phone     *string `json:"phone"`
}

// List handles GET /api/v1/contacts
func (h *ContactHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contacts, err := h.contacts.List(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contacts)
}

// Create handles POST /api/v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), user.ID, appidentity.CreateContactInput{
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Structure: req.Structure,
		Building:  req.Building,
		Apartment: req.Apartment,
		Phone:     req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contact)
}

// Update handles PUT /api/v1/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contact, err := h.contacts.Update(c.Request.Context(), user.ID, contactID, identity.ContactUpdate{
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Structure: req.Structure,
		Building:  req.Building,
		Apartment: req.Apartment,
		Phone:     req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// Delete handles DELETE /api/v1/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID")
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), user.ID, contactID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
