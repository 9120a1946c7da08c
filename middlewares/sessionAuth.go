package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/models"
	"medcare/services"
	"medcare/utils"
)

// contextKey is a custom context key type used to store the identity on the
// request context.
type contextKey string

const currentUserKey contextKey = "currentUser"

// SessionAuthMiddleware resolves the session cookie against the session
// store and attaches the identity to the request context. Requests without a
// live session are rejected with 401.
func SessionAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := utils.SessionID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		user, ok := auth.CurrentUser(sessionID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), currentUserKey, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RoleAuthMiddleware restricts access to users with the given role.
func RoleAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}
		if user.Role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated identity from the context.
func CurrentUser(ctx context.Context) (models.User, error) {
	user, ok := ctx.Value(currentUserKey).(models.User)
	if !ok {
		return models.User{}, errors.New("user not found in context")
	}
	return user, nil
}
