package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/interfaces/http/dto"
)

// currentUserKey is the gin context key for the authenticated user
const currentUserKey = "current_user"

// Authenticator resolves an opaque bearer token key to its user
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*identity.User, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved user in the gin context
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "Authorization header must be 'Bearer <token>'")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireShop rejects authenticated users that are not supplier accounts.
// Must run after RequireAuth.
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !user.IsShop() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden,
					"Only supplier accounts may perform this operation",
					c.GetString(RequestIDKey)))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth
func CurrentUser(c *gin.Context) (*identity.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*identity.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, c.GetString(RequestIDKey)))
}
