package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/services"
)

// UserHandler exposes user CRUD over HTTP.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create adds a new user on behalf of the acting user.
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.userService.Create(actor.Role, &user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing user.
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	user.ID = c.Param("id")

	updated, err := h.userService.Update(actor.Role, &user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.Delete(actor.Role, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
