package view

import (
	"strings"

	"github.com/jpdelos/creative-marketplace/internal/domain"
)

// Storefront is the composed, tenant-scoped view of the shared catalog
// handed to the rendering layer. For the root marketplace Tenant is nil and
// Experiences is the full catalog.
type Storefront struct {
	Tenant      *TenantView         `json:"tenant,omitempty"`
	Experiences []domain.Experience `json:"experiences"`
}

// TenantView exposes the tenant's display fields.
type TenantView struct {
	Subdomain   string `json:"subdomain"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Compose combines a resolved tenant (or nil for the root marketplace) with
// the externally fetched catalog. When the tenant has a category, the catalog
// is scoped to case-insensitive category matches; otherwise it passes through
// unfiltered. Pure data transformation, no I/O.
func Compose(tenant *domain.Tenant, catalog []domain.Experience) *Storefront {
	if tenant == nil {
		return &Storefront{Experiences: filterByCategory(catalog, "")}
	}

	return &Storefront{
		Tenant: &TenantView{
			Subdomain:   tenant.Subdomain,
			Name:        tenant.DisplayName(),
			Icon:        tenant.Icon,
			Description: tenant.Description,
			Category:    tenant.Category,
			Location:    tenant.Location,
		},
		Experiences: filterByCategory(catalog, tenant.Category),
	}
}

// filterByCategory returns the experiences whose category matches, preserving
// catalog order. An empty category matches everything. The result is always a
// fresh slice so callers cannot mutate the input catalog through it.
func filterByCategory(catalog []domain.Experience, category string) []domain.Experience {
	filtered := make([]domain.Experience, 0, len(catalog))
	if category == "" {
		return append(filtered, catalog...)
	}

	for _, exp := range catalog {
		if strings.EqualFold(exp.Category, category) {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}
