package api

import (
	"net/http" // HTTP status codes
	"time"     // Cookie lifetime

	"thrift_manager/internal/domain"     // Domain models and error taxonomy
	"thrift_manager/internal/middleware" // Session cookie and current user
	"thrift_manager/internal/service"    // Auth service

	"github.com/gin-gonic/gin" // Gin web framework
)

// MessageResponse acknowledges an action without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterHandler creates an account and starts a session for it
func RegisterHandler(auth *service.AuthService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request")) // Malformed body
			return
		}
		user, token, err := auth.Register(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err) // Duplicate email, validation or server error
			return
		}
		setSessionCookie(c, token, auth.SessionTTL(), secureCookie) // Log the new user in
		c.JSON(http.StatusCreated, user.Public())                   // Return public fields only
	}
}

// LoginHandler authenticates a user and sets the session cookie
func LoginHandler(auth *service.AuthService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request")) // Malformed body
			return
		}
		token, err := auth.Login(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err) // No cookie on failure
			return
		}
		setSessionCookie(c, token, auth.SessionTTL(), secureCookie) // Start the session
		c.JSON(http.StatusOK, MessageResponse{Message: "Login successful"})
	}
}

// LogoutHandler expires the session cookie
func LogoutHandler(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secureCookie, true) // Expire now
		c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}

// MeHandler returns the authenticated user's public fields
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c) // Attached by JWTAuthMiddleware
		if !ok {
			_ = c.Error(domain.Unauthenticated("Not authenticated"))
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

// setSessionCookie writes the HTTP-only, same-site strict session cookie
func setSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode) // No cross-site sends
	// HTTP-only, HTTPS only in production, expiring with the token
	c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
}

// currentUserID returns the caller's id, recording Unauthenticated when absent
func currentUserID(c *gin.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(domain.Unauthenticated("Not authorized"))
		return "", false
	}
	return user.ID, true
}
