package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jpdelos/creative-marketplace/internal/dto"
	"github.com/jpdelos/creative-marketplace/internal/registry"
	"github.com/jpdelos/creative-marketplace/pkg/response"
	"github.com/jpdelos/creative-marketplace/pkg/telemetry"
)

// TenantHandler handles tenant registration and administration requests
type TenantHandler struct {
	registry *registry.Registry
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(reg *registry.Registry) *TenantHandler {
	return &TenantHandler{registry: reg}
}

// Create handles tenant registration
// POST /api/v1/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tenant.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	span.SetAttributes(attribute.String("tenant.subdomain", req.Subdomain))

	tenant, err := h.registry.Create(ctx, req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusCreated, response.Success(dto.NewTenantResponse(tenant)))
}

// GetBySubdomain handles retrieving a tenant by subdomain
// GET /api/v1/tenants/:subdomain
func (h *TenantHandler) GetBySubdomain(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tenant.get")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	subdomain := c.Param("subdomain")
	if subdomain == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Subdomain is required"))
		return
	}

	normalized, err := registry.NormalizeSubdomain(subdomain)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tenant, err := h.registry.Lookup(ctx, normalized)
	if err != nil {
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(dto.NewTenantResponse(tenant)))
}

// List handles the admin tenant listing, most recently created first
// GET /api/v1/tenants
func (h *TenantHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tenant.list")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	tenants, err := h.registry.List(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(dto.NewListTenantsResponse(tenants)))
}

// Delete handles the admin removal of a tenant. Idempotent: deleting an
// unregistered subdomain also returns 204.
// DELETE /api/v1/tenants/:subdomain
func (h *TenantHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.tenant.delete")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	subdomain := c.Param("subdomain")
	if subdomain == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Subdomain is required"))
		return
	}

	// Same canonical form as lookups, so delete hits the key a GET on the
	// same parameter would resolve.
	normalized, err := registry.NormalizeSubdomain(subdomain)
	if err != nil {
		h.handleError(c, err)
		return
	}

	span.SetAttributes(attribute.String("tenant.subdomain", normalized))

	if err := h.registry.Remove(ctx, normalized); err != nil {
		h.handleError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.Status(http.StatusNoContent)
}

// handleError maps registry errors to response codes. Validation failures
// come back as user-facing field errors; a failing store is the only hard
// failure and surfaces as a generic unavailability message.
func (h *TenantHandler) handleError(c *gin.Context, err error) {
	span := trace.SpanFromContext(c.Request.Context())
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	switch {
	case errors.Is(err, registry.ErrInvalidSubdomain):
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeInvalidSubdomain, err.Error()))
	case errors.Is(err, registry.ErrReservedSubdomain):
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeReservedSubdomain, err.Error()))
	case errors.Is(err, registry.ErrInvalidIcon):
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeInvalidIcon, err.Error()))
	case errors.Is(err, registry.ErrSubdomainTaken):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeSubdomainTaken, "This subdomain is already taken"))
	case errors.Is(err, registry.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeTenantNotFound, "Tenant not found"))
	default:
		c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable(""))
	}
}
