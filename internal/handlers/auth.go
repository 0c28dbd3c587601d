package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/permissions"
	"github.com/takacsd/tms/internal/repository"
)

// AuthHandler coordinates login/logout. There are no passwords: the
// login page of the local app picks a user, and the session carries
// the chosen ID from then on.
type AuthHandler struct {
	userRepo repository.UserRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{userRepo: userRepo}
}

// Login selects the acting user by email and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	users, err := h.userRepo.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}

	for i := range users {
		if users[i].Contacts.Email == req.Email {
			session := sessions.Default(c)
			session.Set(middleware.SessionKeyUserID, users[i].ID)
			if err := session.Save(); err != nil {
				apierrors.InternalError(c, "Failed to save session")
				return
			}
			c.JSON(http.StatusOK, users[i])
			return
		}
	}

	apierrors.NotFound(c, "No user with that email")
}

// Logout removes the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the acting user together with the roles they may assign.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           user,
		"creatableRoles": permissions.CreatableRoles(user.Role),
	})
}
