package middleware

import (
	"errors"   // Error inspection
	"fmt"      // Panic formatting
	"net/http" // HTTP status codes

	"thrift_manager/internal/domain" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

// StatusFor maps an error onto the HTTP status of its taxonomy kind
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDuplicateUser):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler translates the last error recorded with c.Error, or a panic,
// into a JSON response. Outside production the error chain is returned as stack.
func ErrorHandler(isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Error(fmt.Errorf("panic: %v", r))
				c.Abort()
				writeError(c, isProd)
			}
		}()
		c.Next() // Run the handlers
		writeError(c, isProd)
	}
}

func writeError(c *gin.Context, isProd bool) {
	last := c.Errors.Last()
	if last == nil || c.Writer.Written() {
		return // Nothing to report or a response was already sent
	}
	err := last.Err
	status := StatusFor(err)

	resp := ErrorResponse{Message: err.Error()} // Client-facing message
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,   // HTTP method
			"path":   c.Request.URL.Path, // Request path
			"error":  err.Error(),        // Full error chain
		}).Error("Request failed") // Log unexpected failure
		resp.Message = "Server error"
	}
	if !isProd {
		trace := err.Error()
		resp.Stack = &trace
	}
	c.JSON(status, resp)
}
