package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpdelos/creative-marketplace/internal/client"
	"github.com/jpdelos/creative-marketplace/internal/di"
	internalmw "github.com/jpdelos/creative-marketplace/internal/middleware"
	"github.com/jpdelos/creative-marketplace/pkg/config"
	"github.com/jpdelos/creative-marketplace/pkg/kv"
	"github.com/jpdelos/creative-marketplace/pkg/logger"
	"github.com/jpdelos/creative-marketplace/pkg/middleware"
	"github.com/jpdelos/creative-marketplace/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(&logger.Config{
		Level:       logLevel(cfg),
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown failed", zap.Error(err))
		}
	}()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize tenant store", zap.Error(err))
	}

	container := di.NewContainer(&di.ContainerConfig{
		Store:      store,
		RootDomain: cfg.Marketplace.RootDomain,
		Catalog:    client.NewHTTPCatalogClient(cfg.Marketplace.ExperiencesAPIBase),
	})

	if cfg.Store.SeedDemoData && !cfg.IsProduction() {
		if err := container.Registry.SeedDemoTenants(ctx); err != nil {
			logger.Fatal("failed to seed demo tenants", zap.Error(err))
		}
		logger.Info("demo tenants seeded")
	}

	router := setupRouter(cfg, container)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("storefront service starting",
			zap.String("addr", server.Addr),
			zap.String("root_domain", cfg.Marketplace.RootDomain),
			zap.String("store_backend", cfg.Store.Backend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tenant store", zap.Error(err))
		}
	}

	logger.Info("storefront service stopped")
}

// buildStore selects the tenant store backend from configuration.
func buildStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		return kv.NewRedisStore(ctx, &kv.RedisConfig{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
	case config.StoreBackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/storefront", internalmw.TenantResolution(c.Resolver), c.StorefrontHandler.Get)

		tenants := v1.Group("/tenants")
		{
			tenants.POST("", c.TenantHandler.Create)
			tenants.GET("/:subdomain", c.TenantHandler.GetBySubdomain)
		}

		admin := v1.Group("/tenants")
		admin.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("", c.TenantHandler.List)
			admin.DELETE("/:subdomain", c.TenantHandler.Delete)
		}
	}

	return router
}

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}
