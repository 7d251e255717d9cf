package router

import (
	"github.com/gin-gonic/gin"

	"github.com/retailnet/backend/internal/interfaces/http/handler"
	"github.com/retailnet/backend/internal/interfaces/http/middleware"
)

// AuthRoutes registers the public authentication endpoints
type AuthRoutes struct {
	handler *handler.AuthHandler
}

// NewAuthRoutes creates the auth route registrar
func NewAuthRoutes(h *handler.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: h}
}

// RegisterRoutes registers routes on the API group
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", r.handler.Register)
	auth.POST("/login", r.handler.Login)
}

// CatalogRoutes registers the public catalog read endpoints
type CatalogRoutes struct {
	handler *handler.CatalogHandler
}

// NewCatalogRoutes creates the catalog route registrar
func NewCatalogRoutes(h *handler.CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: h}
}

// RegisterRoutes registers routes on the API group
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.GET("/categories", r.handler.Categories)
	catalog.GET("/shops", r.handler.Shops)
	catalog.GET("/products", r.handler.Products)
}

// PartnerRoutes registers the supplier endpoints behind the shop guard
type PartnerRoutes struct {
	handler *handler.PartnerHandler
	auth    middleware.Authenticator
}

// NewPartnerRoutes creates the partner route registrar
func NewPartnerRoutes(h *handler.PartnerHandler, auth middleware.Authenticator) *PartnerRoutes {
	return &PartnerRoutes{handler: h, auth: auth}
}

// RegisterRoutes registers routes on the API group
func (r *PartnerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	partner := rg.Group("/partner")
	partner.Use(middleware.RequireAuth(r.auth), middleware.RequireShop())
	partner.POST("/upload", r.handler.Upload)
	partner.GET("/orders", r.handler.Orders)
}

// BuyerRoutes registers the authenticated buyer endpoints: basket, orders
// and contacts
type BuyerRoutes struct {
	basket   *handler.BasketHandler
	orders   *handler.OrderHandler
	contacts *handler.ContactHandler
	auth     middleware.Authenticator
}

// NewBuyerRoutes creates the buyer route registrar
func NewBuyerRoutes(basket *handler.BasketHandler, orders *handler.OrderHandler, contacts *handler.ContactHandler, auth middleware.Authenticator) *BuyerRoutes {
	return &BuyerRoutes{basket: basket, orders: orders, contacts: contacts, auth: auth}
}

// RegisterRoutes registers routes on the API group
func (r *BuyerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.RequireAuth(r.auth))

	authed.GET("/basket", r.basket.Get)
	authed.POST("/basket", r.basket.Add)
	authed.PUT("/basket", r.basket.UpdateQuantities)
	authed.DELETE("/basket", r.basket.Remove)

	authed.GET("/orders", r.orders.List)
	authed.POST("/orders/:id/submit", r.orders.Submit)

	authed.GET("/contacts", r.contacts.List)
	authed.POST("/contacts", r.contacts.Create)
	authed.PUT("/contacts/:id", r.contacts.Update)
	authed.DELETE("/contacts/:id", r.contacts.Delete)
}
