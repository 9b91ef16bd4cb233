package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpdelos/creative-marketplace/internal/resolver"
	"github.com/jpdelos/creative-marketplace/pkg/logger"
	"github.com/jpdelos/creative-marketplace/pkg/response"
	"github.com/jpdelos/creative-marketplace/pkg/telemetry"
)

// ContextKeyResolution is the gin context key holding the host resolution.
const ContextKeyResolution = "host_resolution"

// TenantResolution resolves the request host to a tenant context exactly once
// per request, before any handler runs. Handlers read the outcome from the
// gin context; which rendering branch executes depends on it. Store failure
// is the only hard error and aborts the request.
func TenantResolution(res *resolver.Resolver) gin.HandlerFunc {
	outcomes, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "storefront.resolution.outcomes",
		Description: "Host resolution outcomes by type",
		Unit:        "1",
	})

	return func(c *gin.Context) {
		resolution, err := res.Resolve(c.Request.Context(), c.Request.Host)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), "host resolution failed",
				zap.String("host", c.Request.Host),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ServiceUnavailable(""))
			return
		}

		if outcomes != nil {
			outcomes.Inc(c.Request.Context(), telemetry.OutcomeAttr(string(resolution.Outcome)))
		}

		c.Set(ContextKeyResolution, resolution)
		c.Next()
	}
}

// GetResolution returns the host resolution stored by TenantResolution, or
// nil when the middleware did not run.
func GetResolution(c *gin.Context) *resolver.Resolution {
	value, exists := c.Get(ContextKeyResolution)
	if !exists {
		return nil
	}
	resolution, ok := value.(*resolver.Resolution)
	if !ok {
		return nil
	}
	return resolution
}
