// internal/router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hearthmade/storefront-backend/internal/config"
	"github.com/hearthmade/storefront-backend/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "router-test-secret"},
		Frontend:    config.FrontendConfig{BaseURL: "http://localhost:3000"},
	}
	return Initialize(nil, services.NewCacheService(cfg), cfg)
}

func TestRouteTable(t *testing.T) {
	r := newTestRouter()

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/refresh",
		"GET /products",
		"GET /products/:ref",
		"GET /products/:ref/reviews",
		"POST /products/:ref/reviews",
		"GET /users/me",
		"PATCH /users/me",
		"POST /users/ensure",
		"GET /admin/products",
		"POST /admin/products",
		"PATCH /admin/products/:id",
		"DELETE /admin/products/:id",
		"POST /admin/products/upload-image",
	}

	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}
