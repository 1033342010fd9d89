// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/tutor-engine/internal/metrics"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)

// respondError writes a standardized JSON error response, pulling the
// request ID from the gin context.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := map[string]string{
		"code":    code,
		"message": message,
	}
	if rid := c.GetString(requestIDKey); rid != "" {
		resp["request_id"] = rid
	}
	c.AbortWithStatusJSON(status, resp)
}
