package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/retailnet/backend/internal/infrastructure/persistence"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}
	h.Success(c, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
