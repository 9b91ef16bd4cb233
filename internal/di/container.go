package di

import (
	"github.com/jpdelos/creative-marketplace/internal/client"
	"github.com/jpdelos/creative-marketplace/internal/handler"
	"github.com/jpdelos/creative-marketplace/internal/registry"
	"github.com/jpdelos/creative-marketplace/internal/resolver"
	"github.com/jpdelos/creative-marketplace/pkg/kv"
)

// Container holds all dependencies for the storefront service
type Container struct {
	// Infrastructure
	Store kv.Store

	// Core components
	Registry *registry.Registry
	Resolver *resolver.Resolver
	Catalog  client.CatalogClient

	// Handlers
	HealthHandler     *handler.HealthHandler
	TenantHandler     *handler.TenantHandler
	StorefrontHandler *handler.StorefrontHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Store      kv.Store
	RootDomain string
	Catalog    client.CatalogClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Store:   cfg.Store,
		Catalog: cfg.Catalog,
	}

	// Core components
	c.Registry = registry.New(c.Store)
	c.Resolver = resolver.New(c.Registry, cfg.RootDomain)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.Store)
	c.TenantHandler = handler.NewTenantHandler(c.Registry)
	c.StorefrontHandler = handler.NewStorefrontHandler(c.Catalog)

	return c
}
