package routes

import (
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/config"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/handler"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/middleware"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Billing    *handler.BillingHandler
	Catalog    *handler.CatalogHandler
	Dealer     *handler.DealerHandler
	Purchase   *handler.PurchaseHandler
	Alteration *handler.AlterationHandler
	Settings   *handler.SettingsHandler
	Dashboard  *handler.DashboardHandler
	Events     *handler.EventsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RegisterMiddleware())

		// Per-register rate limiter
		rateLimiter := middleware.NewRegisterRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Save)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Change feed
	protected.GET("/events", h.Events.Stream)

	registerBillingRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerDealerRoutes(protected, h)
	registerPurchaseRoutes(protected, h)
	registerAlterationRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerBillingRoutes(protected *gin.RouterGroup, h *Handlers) {
	billing := protected.Group("/billing")
	{
		billing.GET("/draft", h.Billing.GetDraft)
		billing.POST("/draft", h.Billing.NewDraft)
		billing.POST("/draft/items", h.Billing.AddItem)
		billing.PUT("/draft/items/:variant_id", h.Billing.UpdateItem)
		billing.DELETE("/draft/items/:variant_id", h.Billing.RemoveItem)
		billing.PUT("/draft/discount", h.Billing.SetDiscount)
		billing.POST("/draft/save", h.Billing.Save)
	}

	bills := protected.Group("/bills")
	{
		bills.GET("", h.Billing.List)
		bills.GET("/:id", h.Billing.Get)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Catalog.ListItems)
		items.POST("", h.Catalog.CreateItem)
		items.GET("/:id", h.Catalog.GetItem)
		items.PUT("/:id", h.Catalog.UpdateItem)
		items.DELETE("/:id", h.Catalog.DeleteItem)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Catalog.ListCategories)
		categories.POST("", h.Catalog.CreateCategory)
		categories.PUT("/:id", h.Catalog.UpdateCategory)
		categories.DELETE("/:id", h.Catalog.DeleteCategory)
	}
}

func registerDealerRoutes(protected *gin.RouterGroup, h *Handlers) {
	dealers := protected.Group("/dealers")
	{
		dealers.GET("", h.Dealer.List)
		dealers.POST("", h.Dealer.Create)
		dealers.GET("/:id", h.Dealer.Get)
		dealers.PUT("/:id", h.Dealer.Update)
		dealers.DELETE("/:id", h.Dealer.Delete)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.POST("/extract", h.Purchase.Extract)
		purchases.GET("/:id", h.Purchase.Get)
	}
}

func registerAlterationRoutes(protected *gin.RouterGroup, h *Handlers) {
	alterations := protected.Group("/alterations")
	{
		alterations.GET("", h.Alteration.List)
		alterations.POST("", h.Alteration.Create)
		alterations.GET("/:id", h.Alteration.Get)
		alterations.PUT("/:id", h.Alteration.Update)
		alterations.PATCH("/:id/toggle", h.Alteration.ToggleComplete)
		alterations.DELETE("/:id", h.Alteration.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(string(enum.RoleAdmin)))
	{
		users.GET("", h.Auth.ListUsers)
		users.POST("", h.Auth.CreateUser)
	}
}
