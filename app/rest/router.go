package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"provisioning-service/app/port"
	"provisioning-service/app/rest/handlers"
	custommw "provisioning-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger              *slog.Logger
	ProvisioningUsecase port.ProvisioningUsecase
	SubscriptionUsecase port.SubscriptionUsecase
	HealthChecks        map[string]handlers.HealthChecker
	EnableDebug         bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	provisionHandler := handlers.NewProvisionHandler(config.ProvisioningUsecase, config.Logger)
	subscriptionHandler := handlers.NewSubscriptionHandler(config.SubscriptionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// Routes
	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.POST("/provision", provisionHandler.Provision)
	v1.POST("/subscriptions/:id/keys/primary", subscriptionHandler.RegeneratePrimaryKey)
	v1.POST("/subscriptions/:id/keys/secondary", subscriptionHandler.RegenerateSecondaryKey)

	return e
}
