package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/internal/registry"
	"github.com/jpdelos/creative-marketplace/internal/resolver"
	"github.com/jpdelos/creative-marketplace/pkg/kv"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingStore always reports unavailability.
type failingStore struct {
	kv.Store
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, context.DeadlineExceeded
}

func TestTenantResolutionSetsContext(t *testing.T) {
	reg := registry.New(kv.NewMemoryStore())
	_, err := reg.Create(context.Background(), domain.Tenant{Subdomain: "studio", Icon: "🎨"})
	require.NoError(t, err)

	var captured *resolver.Resolution
	router := gin.New()
	router.GET("/", TenantResolution(resolver.New(reg, "example.com")), func(c *gin.Context) {
		captured = GetResolution(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "studio.example.com"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, resolver.OutcomeTenant, captured.Outcome)
	assert.Equal(t, "studio", captured.Subdomain)
	require.NotNil(t, captured.Tenant)
	assert.Equal(t, "🎨", captured.Tenant.Icon)
}

func TestTenantResolutionStoreFailure(t *testing.T) {
	reg := registry.New(&failingStore{})
	handlerRan := false

	router := gin.New()
	router.GET("/", TenantResolution(resolver.New(reg, "example.com")), func(c *gin.Context) {
		handlerRan = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "studio.example.com"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, handlerRan, "request must abort before the handler")
}

func TestGetResolutionMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetResolution(c))

	c.Set(ContextKeyResolution, "not a resolution")
	assert.Nil(t, GetResolution(c))
}
