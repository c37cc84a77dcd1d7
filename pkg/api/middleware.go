package api

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
)

// Identity headers supplied by the upstream proxy after authentication.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"
)

const (
	ctxTenantID = "tenant_id"
	ctxUserID   = "user_id"
)

// requireIdentity rejects requests missing the proxy-supplied identity
// headers and stashes them in the request context for the handlers.
func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(HeaderTenantID))
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if tenantID == "" || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing identity headers",
			})
			return
		}
		c.Set(ctxTenantID, tenantID)
		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// identity returns the tenant and user stashed by requireIdentity.
func identity(c *gin.Context) (tenantID, userID string) {
	return c.GetString(ctxTenantID), c.GetString(ctxUserID)
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// requestLogger logs one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
