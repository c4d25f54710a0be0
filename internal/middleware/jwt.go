package middleware

import (
	"context" // Request-scoped identity
	"strings" // String manipulation

	"thrift_manager/internal/domain" // Domain models and error taxonomy

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token
const SessionCookie = "token"

// Authenticator resolves a session token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type userKey struct{}

// WithUser attaches the authenticated user to ctx
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user attached by WithUser
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)
	return u, ok && u != nil
}

// CurrentUser returns the user resolved by JWTAuthMiddleware for this request
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	return UserFromContext(c.Request.Context())
}

// TokenFromRequest reads the session cookie first, then a Bearer Authorization header
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token // Browser clients
	}
	authHeader := c.GetHeader("Authorization") // Programmatic clients
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// JWTAuthMiddleware validates the session token and attaches the user to the request context
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			// ErrorHandler writes the response
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user)) // Store user in request context
		c.Set("userID", user.ID)                                               // Read by the request logger
		c.Next()                                                               // Proceed to the next handler
	}
}
