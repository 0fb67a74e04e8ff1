package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"provisioning-service/app/config"
	"provisioning-service/app/driver/apim"
	"provisioning-service/app/driver/kratos"
	"provisioning-service/app/driver/portal"
	"provisioning-service/app/driver/postgres"
	"provisioning-service/app/gateway"
	"provisioning-service/app/port"
	"provisioning-service/app/rest"
	"provisioning-service/app/rest/handlers"
	"provisioning-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	IdentityClient *apim.IdentityClient
	BackendClient  *apim.Client
	KratosClient   *kratos.Client
	PortalClient   *portal.Client

	// Caches
	CredentialCache *usecase.CredentialCache
	DirectoryCache  *usecase.DirectoryCache

	// Usecases
	SubscriptionUsecase port.SubscriptionUsecase
	ProvisioningUsecase port.ProvisioningUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.IdentityClient, err = apim.NewIdentityClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity client: %w", err)
	}

	identityGateway := gateway.NewIdentityGateway(container.IdentityClient, logger)
	container.CredentialCache = usecase.NewCredentialCache(identityGateway, cfg.CredentialTTL, nil, logger)

	container.BackendClient, err = apim.NewClient(cfg, container.CredentialCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backend client: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	container.PortalClient, err = portal.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize portal client: %w", err)
	}

	var auditRepository port.AuditRepository
	if cfg.EnableAudit {
		container.DB, err = postgres.NewConnection(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		auditRepository = postgres.NewAuditRepository(container.DB.Pool(), logger)
	}

	directoryGateway := gateway.NewDirectoryGateway(container.BackendClient, logger)
	subscriptionGateway := gateway.NewSubscriptionGateway(container.BackendClient, logger)
	downstreamGateway := gateway.NewDownstreamGateway(container.KratosClient, container.PortalClient, logger)

	container.DirectoryCache = usecase.NewDirectoryCache(directoryGateway, cfg.CacheFlush, logger)
	groupReconciler := usecase.NewGroupReconciler(directoryGateway, logger)
	container.SubscriptionUsecase = usecase.NewSubscriptionUsecase(subscriptionGateway, logger)

	container.ProvisioningUsecase = usecase.NewProvisioningUsecase(
		container.CredentialCache,
		container.DirectoryCache,
		groupReconciler,
		container.SubscriptionUsecase,
		downstreamGateway,
		auditRepository,
		usecase.ProvisioningConfig{
			ProductName:    cfg.ProductName,
			DesiredGroups:  cfg.Groups,
			WelcomeSubject: cfg.WelcomeSubject,
			WelcomeBody:    cfg.WelcomeBody,
		},
		logger,
	)

	logger.Info("container initialized",
		"product", cfg.ProductName,
		"groups", cfg.Groups,
		"audit_enabled", cfg.EnableAudit)

	return container, nil
}

// Start launches the background cache flush loop
func (c *Container) Start(ctx context.Context) {
	c.DirectoryCache.Start(ctx)
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	checks := map[string]handlers.HealthChecker{
		"kratos": c.KratosClient,
	}
	if c.DB != nil {
		checks["database"] = c.DB
	}

	return rest.NewRouter(rest.RouterConfig{
		Logger:              c.Logger,
		ProvisioningUsecase: c.ProvisioningUsecase,
		SubscriptionUsecase: c.SubscriptionUsecase,
		HealthChecks:        checks,
		EnableDebug:         c.Config.LogLevel == "debug",
	})
}

// Close releases held resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
