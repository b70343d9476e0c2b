package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"transactionapi/internal/apperror"
	"transactionapi/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID keeps the caller's X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// recovery turns panics into the internal error envelope
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Panic recovered")

		writeError(c, apperror.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered)))
	})
}

// notFound reports unmatched routes
func notFound(c *gin.Context) {
	writeError(c, apperror.NewNotFoundError(fmt.Sprintf("Route %s", c.Request.URL.RequestURI())))
}
