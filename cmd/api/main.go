package main

import (
	"context"

	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/cache"
	"github.com/Prathamesh404NotFound/Billing-System/internal/config"
	"github.com/Prathamesh404NotFound/Billing-System/internal/events"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/database"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/handler"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/routes"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/gemini"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := config.NewLogger(&cfg.App)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		logger.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Dashboard cache: Redis when enabled, otherwise a no-op
	var dashboardCache cache.Cache = cache.Noop{}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.WithError(err).Warn("Redis unreachable; dashboard caching disabled")
		} else {
			dashboardCache = redisCache
			defer redisCache.Close()
		}
	}

	// In-process change feed
	bus := events.NewBus()

	// Gemini client for bill extraction. Without an API key extraction
	// requests fail cleanly and everything else keeps working.
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	billRepo := repository.NewBillRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	alterationRepo := repository.NewAlterationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	inventoryService := service.NewInventoryService(itemRepo, logger)
	billingService := service.NewBillingService(billRepo, itemRepo, settingsRepo, inventoryService, bus, logger)
	catalogService := service.NewCatalogService(itemRepo, categoryRepo, bus)
	dealerService := service.NewDealerService(dealerRepo, bus)
	purchaseService := service.NewPurchaseService(purchaseRepo, dealerRepo, itemRepo, inventoryService, bus, logger)
	extractionService := service.NewExtractionService(geminiClient, itemRepo, dealerRepo, logger)
	alterationService := service.NewAlterationService(alterationRepo, bus)
	settingsService := service.NewSettingsService(settingsRepo, bus)
	dashboardService := service.NewDashboardService(analyticsRepo, itemRepo, dashboardCache, cfg.Redis.CacheTTL, logger)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Billing:    handler.NewBillingHandler(billingService),
		Catalog:    handler.NewCatalogHandler(catalogService),
		Dealer:     handler.NewDealerHandler(dealerService),
		Purchase:   handler.NewPurchaseHandler(purchaseService, extractionService),
		Alteration: handler.NewAlterationHandler(alterationService),
		Settings:   handler.NewSettingsHandler(settingsService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Events:     handler.NewEventsHandler(bus),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Infof("Starting %s server on port %s (%s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
