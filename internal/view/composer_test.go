package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdelos/creative-marketplace/internal/domain"
)

var testCatalog = []domain.Experience{
	{ID: 1, Title: "Wheel Throwing", Category: "Cerámica", City: "Barcelona"},
	{ID: 2, Title: "Oil Painting", Category: "Pintura", City: "Madrid"},
	{ID: 3, Title: "Raku Firing", Category: "cerámica", City: "Valencia"},
	{ID: 4, Title: "Watercolor Basics", Category: "Pintura", City: "Sevilla"},
}

func TestComposeRoot(t *testing.T) {
	storefront := Compose(nil, testCatalog)

	assert.Nil(t, storefront.Tenant)
	assert.Equal(t, testCatalog, storefront.Experiences)
}

func TestComposeTenantCategoryFilter(t *testing.T) {
	tenant := &domain.Tenant{
		Subdomain: "pottery-studio",
		Icon:      "🏺",
		Name:      "Barcelona Pottery",
		Category:  "Cerámica",
		Location:  "Barcelona",
	}

	storefront := Compose(tenant, testCatalog)

	require.NotNil(t, storefront.Tenant)
	assert.Equal(t, "pottery-studio", storefront.Tenant.Subdomain)
	assert.Equal(t, "Barcelona Pottery", storefront.Tenant.Name)
	assert.Equal(t, "🏺", storefront.Tenant.Icon)

	require.Len(t, storefront.Experiences, 2)
	assert.Equal(t, 1, storefront.Experiences[0].ID, "catalog order preserved")
	assert.Equal(t, 3, storefront.Experiences[1].ID, "category match is case-insensitive")
}

func TestComposeTenantWithoutCategory(t *testing.T) {
	tenant := &domain.Tenant{Subdomain: "studio", Icon: "🎨"}

	storefront := Compose(tenant, testCatalog)

	assert.Equal(t, testCatalog, storefront.Experiences, "no category means the full catalog")
}

func TestComposeTenantNoMatches(t *testing.T) {
	tenant := &domain.Tenant{Subdomain: "studio", Icon: "🎨", Category: "Escultura"}

	storefront := Compose(tenant, testCatalog)

	assert.NotNil(t, storefront.Experiences)
	assert.Empty(t, storefront.Experiences)
}

func TestComposeFallbackDisplayName(t *testing.T) {
	tenant := &domain.Tenant{Subdomain: "pottery-studio", Icon: "🏺"}

	storefront := Compose(tenant, nil)

	assert.Equal(t, "pottery-studio Creative Studio", storefront.Tenant.Name)
}

func TestComposeDoesNotAliasCatalog(t *testing.T) {
	catalog := []domain.Experience{
		{ID: 1, Title: "Wheel Throwing", Category: "Cerámica"},
	}

	storefront := Compose(nil, catalog)
	storefront.Experiences[0].Title = "changed"

	assert.Equal(t, "Wheel Throwing", catalog[0].Title)
}
