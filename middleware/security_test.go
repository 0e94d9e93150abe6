package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"store-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(allowed []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware(allowed))
	r.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rows": []string{}})
	})
	return r
}

func TestCORS_AllowedOriginPasses(t *testing.T) {
	r := corsRouter([]string{"https://storefront.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "https://storefront.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://storefront.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOriginRejectedBeforeHandler(t *testing.T) {
	r := corsRouter([]string{"https://storefront.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Origin not allowed")
}

func TestCORS_NoOriginHeaderPassesThrough(t *testing.T) {
	r := corsRouter([]string{"https://storefront.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_PreflightAnsweredAtMiddleware(t *testing.T) {
	r := corsRouter([]string{"https://storefront.example.com"})

	// No OPTIONS route is registered; the middleware must answer preflight
	// itself so it never falls through to the 404 catch-all.
	req := httptest.NewRequest(http.MethodOptions, "/cart-products/1", nil)
	req.Header.Set("Origin", "https://storefront.example.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}
