package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "wallet/internal/errors"
)

// APIKeyHeader is the header clients use to present the shared API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey leaves the routes open.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			_ = c.Error(apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
