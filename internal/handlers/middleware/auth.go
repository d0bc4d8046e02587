package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

// UserContextKey holds the authenticated *entities.User.
const UserContextKey = "current_user"

// Authenticator resolves an Authorization header to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*entities.User, error)
}

// ErrorWriter renders err as the response and aborts the chain.
type ErrorWriter func(c *gin.Context, err error)

type AuthMiddleware struct {
	auth    Authenticator
	onError ErrorWriter
}

func NewAuthMiddleware(auth Authenticator, onError ErrorWriter) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, onError: onError}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			m.onError(c, err)
			return
		}
		c.Set(UserContextKey, user)
		c.Next()
	}
}

// OptionalAuth sets the user when the request carries a valid token and
// lets anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if user, err := m.auth.Authenticate(c.Request.Context(), header); err == nil {
				c.Set(UserContextKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}
