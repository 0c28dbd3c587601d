package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/repository"
)

// SessionKeyUserID is the session entry carrying the logged-in user's
// ID.
const SessionKeyUserID = "user_id"

// ContextKeyUser is the gin context entry holding the resolved acting
// user.
const ContextKeyUser = "acting_user"

// RequireAuth resolves the acting user from the session and puts the
// full record into the request context, so handlers can hand role and
// ID to the permission engine.
func RequireAuth(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(SessionKeyUserID).(string)
		if userID == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			apierrors.StorageUnavailable(c, "")
			c.Abort()
			return
		}
		if user == nil {
			// The session references a deleted user.
			apierrors.Unauthorized(c, "Session user no longer exists")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// ActingUser retrieves the resolved acting user from the context.
func ActingUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// SetActingUser injects an acting user directly (used for testing).
func SetActingUser(c *gin.Context, user *models.User) {
	c.Set(ContextKeyUser, user)
}
