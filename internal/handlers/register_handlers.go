package handlers

import (
	"fmt"
	"net/http"

	"github.com/designerabdulhai/hhdcashfinal/cmd/docs"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	var loginLimit gin.HandlerFunc
	if cfg.LoginRateLimit != "" {
		limiter, err := middleware.NewMemoryRateLimiter(cfg.LoginRateLimit)
		if err != nil {
			return fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
		}
		loginLimit = middleware.RateLimit(limiter)
	}
	RegisterAuthRoutes(r, services.User, services.Token, loginLimit)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMeRoute(v1, service.User)
	RegisterUserRoutes(v1, service.User, service.Staff)
	RegisterCategoryRoutes(v1, service.Category)
	RegisterCashbookRoutes(v1, service.Cashbook)
	RegisterStaffRoutes(v1, service.Staff)
	RegisterEntryRoutes(v1, service.Entry, service.Export)
	RegisterReportingRoutes(v1, service.Reporting)
	RegisterNotificationRoutes(v1, service.Notification)
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
