package dto

import (
	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/internal/view"
)

// Storefront contexts returned to the rendering layer.
const (
	StorefrontContextRoot   = "root"
	StorefrontContextTenant = "tenant"
)

// StorefrontResponse is the composed page payload for an incoming host:
// either the unscoped root marketplace or a tenant-branded storefront.
type StorefrontResponse struct {
	Context     string              `json:"context"`
	Tenant      *view.TenantView    `json:"tenant,omitempty"`
	Experiences []domain.Experience `json:"experiences"`
	Featured    []domain.Experience `json:"featured,omitempty"`
}
