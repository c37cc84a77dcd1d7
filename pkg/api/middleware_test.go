package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requireIdentity())
	router.GET("/probe", func(c *gin.Context) {
		tenantID, userID := identity(c)
		c.JSON(http.StatusOK, gin.H{"tenant_id": tenantID, "user_id": userID})
	})

	t.Run("missing headers rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			tenant string
			user   string
		}{
			{"no headers", "", ""},
			{"no user", "t-1", ""},
			{"no tenant", "", "u-1"},
			{"blank values", "  ", "  "},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/probe", nil)
				if tt.tenant != "" {
					req.Header.Set(HeaderTenantID, tt.tenant)
				}
				if tt.user != "" {
					req.Header.Set(HeaderUserID, tt.user)
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusUnauthorized, w.Code)
				assert.JSONEq(t, `{"error":"missing identity headers"}`, w.Body.String())
			})
		}
	})

	t.Run("identity reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderTenantID, "t-1")
		req.Header.Set(HeaderUserID, "u-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tenant_id":"t-1","user_id":"u-1"}`, w.Body.String())
	})
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(securityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
