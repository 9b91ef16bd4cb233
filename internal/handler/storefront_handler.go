package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/jpdelos/creative-marketplace/internal/client"
	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/internal/dto"
	"github.com/jpdelos/creative-marketplace/internal/middleware"
	"github.com/jpdelos/creative-marketplace/internal/resolver"
	"github.com/jpdelos/creative-marketplace/internal/view"
	"github.com/jpdelos/creative-marketplace/pkg/logger"
	"github.com/jpdelos/creative-marketplace/pkg/response"
	"github.com/jpdelos/creative-marketplace/pkg/telemetry"
)

// StorefrontHandler serves the composed storefront for the request host:
// the unscoped root marketplace, or a tenant-branded, category-scoped view.
type StorefrontHandler struct {
	catalog client.CatalogClient
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(catalog client.CatalogClient) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalog}
}

// Get handles GET /api/v1/storefront. The TenantResolution middleware has
// already mapped the host; this handler picks the rendering branch.
func (h *StorefrontHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.storefront.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	resolution := middleware.GetResolution(c)
	if resolution == nil {
		span.SetStatus(codes.Error, "missing host resolution")
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	span.SetAttributes(attribute.String("resolution.outcome", string(resolution.Outcome)))

	switch resolution.Outcome {
	case resolver.OutcomeTenant:
		h.tenantStorefront(c, resolution)
	case resolver.OutcomeTenantNotFound:
		span.SetStatus(codes.Error, "tenant not found")
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeTenantNotFound,
			"No marketplace is registered for this subdomain"))
	default:
		// Root domain and unrecognized hosts both fall through to the
		// unscoped marketplace.
		h.rootStorefront(c)
	}
}

func (h *StorefrontHandler) rootStorefront(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, response.Success(&dto.StorefrontResponse{
		Context:     dto.StorefrontContextRoot,
		Experiences: h.fetchCatalog(ctx),
	}))
}

func (h *StorefrontHandler) tenantStorefront(c *gin.Context, resolution *resolver.Resolution) {
	ctx := c.Request.Context()

	composed := view.Compose(resolution.Tenant, h.fetchCatalog(ctx))

	featured, err := h.catalog.FeaturedExperiences(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch featured experiences", zap.Error(err))
		featured = nil
	}

	c.JSON(http.StatusOK, response.Success(&dto.StorefrontResponse{
		Context:     dto.StorefrontContextTenant,
		Tenant:      composed.Tenant,
		Experiences: composed.Experiences,
		Featured:    featured,
	}))
}

// fetchCatalog degrades to an empty catalog when the external Experiences
// API is unavailable; the storefront still renders the tenant branding.
func (h *StorefrontHandler) fetchCatalog(ctx context.Context) []domain.Experience {
	experiences, err := h.catalog.ListExperiences(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch experiences catalog", zap.Error(err))
		return []domain.Experience{}
	}
	return experiences
}
