package dto

import (
	"time"

	"github.com/jpdelos/creative-marketplace/internal/domain"
)

// CreateTenantRequest represents a request to register a new marketplace
// subdomain. Normalization and the icon check happen in the registry, which
// is the single source of truth for what a valid tenant key looks like.
type CreateTenantRequest struct {
	Subdomain   string `json:"subdomain" binding:"required,max=63"`
	Icon        string `json:"icon" binding:"required"`
	Name        string `json:"name" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Category    string `json:"category" binding:"omitempty,max=100"`
	Location    string `json:"location" binding:"omitempty,max=255"`
}

// ToDomain converts the request to a domain tenant record. CreatedAt is
// stamped by the registry at creation time.
func (r *CreateTenantRequest) ToDomain() domain.Tenant {
	return domain.Tenant{
		Subdomain:   r.Subdomain,
		Icon:        r.Icon,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
	}
}

// TenantResponse represents tenant data in responses
type TenantResponse struct {
	Subdomain   string `json:"subdomain"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// NewTenantResponse converts a domain tenant to its response form
func NewTenantResponse(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		Subdomain:   tenant.Subdomain,
		Icon:        tenant.Icon,
		Name:        tenant.DisplayName(),
		Description: tenant.Description,
		Category:    tenant.Category,
		Location:    tenant.Location,
		CreatedAt:   time.UnixMilli(tenant.CreatedAt).UTC().Format(time.RFC3339),
	}
}

// ListTenantsResponse represents the admin tenant listing, most recently
// created first
type ListTenantsResponse struct {
	Tenants    []TenantResponse `json:"tenants"`
	TotalCount int              `json:"total_count"`
}

// NewListTenantsResponse converts a sorted slice of domain tenants
func NewListTenantsResponse(tenants []*domain.Tenant) *ListTenantsResponse {
	responses := make([]TenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		responses = append(responses, *NewTenantResponse(tenant))
	}
	return &ListTenantsResponse{
		Tenants:    responses,
		TotalCount: len(responses),
	}
}
