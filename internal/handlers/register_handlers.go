package handlers

import (
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/middleware"
	"github.com/finly-app/finly_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, limiterInstance)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// Identity comes from the upstream auth proxy; every v1 route is user-scoped.
	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance), middleware.UserScope())

	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.Rate)
	registerRecordRoutes(v1, services.Record)
	registerBudgetRoutes(v1, services.Budget)
	registerDashboardRoutes(v1, services.Dashboard)
}
