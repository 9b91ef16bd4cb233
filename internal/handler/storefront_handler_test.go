package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/internal/middleware"
	"github.com/jpdelos/creative-marketplace/internal/registry"
	"github.com/jpdelos/creative-marketplace/internal/resolver"
	"github.com/jpdelos/creative-marketplace/pkg/kv"
	"github.com/jpdelos/creative-marketplace/pkg/response"
)

// stubCatalog returns fixed experiences, or fails every call when err is set.
type stubCatalog struct {
	experiences []domain.Experience
	featured    []domain.Experience
	err         error
}

func (s *stubCatalog) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.experiences, nil
}

func (s *stubCatalog) FeaturedExperiences(ctx context.Context) ([]domain.Experience, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.featured, nil
}

func setupStorefrontRouter(t *testing.T, catalog *stubCatalog) *gin.Engine {
	t.Helper()
	reg := registry.New(kv.NewMemoryStore())
	_, err := reg.Create(context.Background(), domain.Tenant{
		Subdomain: "pottery-studio",
		Icon:      "🏺",
		Name:      "Barcelona Pottery",
		Category:  "Cerámica",
	})
	require.NoError(t, err)

	res := resolver.New(reg, "example.com")
	h := NewStorefrontHandler(catalog)

	router := gin.New()
	router.GET("/api/v1/storefront", middleware.TenantResolution(res), h.Get)
	return router
}

func getStorefront(t *testing.T, router *gin.Engine, host string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storefront", nil)
	req.Host = host
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]interface{})
	return w, data
}

var storefrontCatalog = []domain.Experience{
	{ID: 1, Title: "Wheel Throwing", Category: "Cerámica"},
	{ID: 2, Title: "Oil Painting", Category: "Pintura"},
	{ID: 3, Title: "Raku Firing", Category: "cerámica"},
}

func TestStorefrontRoot(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{experiences: storefrontCatalog})

	w, data := getStorefront(t, router, "example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", data["context"])
	assert.Nil(t, data["tenant"])
	assert.Len(t, data["experiences"], 3)
}

func TestStorefrontTenant(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{
		experiences: storefrontCatalog,
		featured:    []domain.Experience{{ID: 9, Title: "Featured Raku", Category: "Cerámica"}},
	})

	w, data := getStorefront(t, router, "pottery-studio.example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant", data["context"])

	tenant := data["tenant"].(map[string]interface{})
	assert.Equal(t, "pottery-studio", tenant["subdomain"])
	assert.Equal(t, "Barcelona Pottery", tenant["name"])
	assert.Equal(t, "🏺", tenant["icon"])

	assert.Len(t, data["experiences"], 2, "catalog scoped to the tenant category")
	assert.Len(t, data["featured"], 1)
}

func TestStorefrontTenantNotFound(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{experiences: storefrontCatalog})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/storefront", nil)
	req.Host = "ghost.example.com"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeTenantNotFound, resp.Error.Code)
}

func TestStorefrontUnknownHostFallsBackToRoot(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{experiences: storefrontCatalog})

	w, data := getStorefront(t, router, "other.org")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", data["context"])
}

func TestStorefrontLocalhostDevelopment(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{experiences: storefrontCatalog})

	// Localhost resolves like example.com would, but the configured root
	// domain is example.com.
	w, data := getStorefront(t, router, "pottery-studio.localhost:8080")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant", data["context"])
}

func TestStorefrontCatalogUnavailableDegrades(t *testing.T) {
	router := setupStorefrontRouter(t, &stubCatalog{err: errors.New("upstream down")})

	w, data := getStorefront(t, router, "pottery-studio.example.com")
	require.Equal(t, http.StatusOK, w.Code, "storefront still renders without the catalog")
	assert.Equal(t, "tenant", data["context"])
	assert.NotNil(t, data["tenant"])
	assert.Len(t, data["experiences"], 0)
	assert.Nil(t, data["featured"])
}
