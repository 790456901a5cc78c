package handlers

import (
	"github.com/daanseva/donation_backend/cmd/docs"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publicLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Setup API v1 routes
	setupAPIV1Routes(r, cfg, services, publicLimiter)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. The public endpoints are
// rate limited per client IP; everything under the admin group requires a
// bearer token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publicLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	public := v1.Group("", middleware.RateLimit(publicLimiter))
	registerPaymentRoutes(public, services.Payment)
	registerDonationVerifyRoutes(public, services.Donation)
	registerFundPublicRoutes(public, services.Fund)

	admin := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerDonationAdminRoutes(admin, services.Donation)
	registerFundAdminRoutes(admin, services.Fund)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
