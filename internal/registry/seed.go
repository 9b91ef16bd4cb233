package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jpdelos/creative-marketplace/internal/domain"
)

// SeedDemoTenants writes a small fixed set of sample tenants for local
// development and demos. Existing records are never overwritten. Production
// deployments must not call this.
func (r *Registry) SeedDemoTenants(ctx context.Context) error {
	now := r.now()
	demo := []domain.Tenant{
		{
			Subdomain:   "pottery-studio",
			Icon:        "🏺",
			CreatedAt:   now.Add(-24 * time.Hour).UnixMilli(),
			Name:        "Barcelona Pottery Studio",
			Description: "Traditional ceramics and modern pottery workshops",
			Category:    "Cerámica",
			Location:    "Barcelona, Spain",
		},
		{
			Subdomain:   "art-collective",
			Icon:        "🎨",
			CreatedAt:   now.Add(-48 * time.Hour).UnixMilli(),
			Name:        "Madrid Art Collective",
			Description: "Painting, drawing, and mixed media art classes",
			Category:    "Pintura",
			Location:    "Madrid, Spain",
		},
		{
			Subdomain:   "creative-workshop",
			Icon:        "✂️",
			CreatedAt:   now.Add(-72 * time.Hour).UnixMilli(),
			Name:        "Creative Workshop Hub",
			Description: "DIY crafts and handmade experiences for all ages",
			Category:    "Arte",
			Location:    "Valencia, Spain",
		},
	}

	for _, tenant := range demo {
		value, err := json.Marshal(&tenant)
		if err != nil {
			return fmt.Errorf("failed to encode demo tenant %s: %w", tenant.Subdomain, err)
		}
		if _, err := r.store.SetNX(ctx, TenantKey(tenant.Subdomain), value); err != nil {
			return fmt.Errorf("tenant store: %w", err)
		}
	}
	return nil
}
