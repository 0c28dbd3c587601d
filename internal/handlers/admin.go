package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/seed"
	"github.com/takacsd/tms/internal/store"
)

// AdminHandler exposes the demo bootstrap and reset operations.
type AdminHandler struct {
	generator *seed.Generator
	db        *gorm.DB
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(generator *seed.Generator, db *gorm.DB) *AdminHandler {
	return &AdminHandler{generator: generator, db: db}
}

func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return false
	}
	if actor.Role != models.RoleAdmin {
		apierrors.Forbidden(c, "")
		return false
	}
	return true
}

// Seed runs the idempotent fixture generator and reports per-collection
// insert counts.
func (h *AdminHandler) Seed(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	result, err := h.generator.Load()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reset erases every collection. Demo use only.
func (h *AdminHandler) Reset(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	if err := store.ClearAll(h.db); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}
