package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgrid/admin-api/internal/api/handler"
	"github.com/shopgrid/admin-api/internal/api/middleware"
	"github.com/shopgrid/admin-api/internal/core/listing"
	"github.com/shopgrid/admin-api/internal/core/ports"
	"github.com/shopgrid/admin-api/internal/core/service"
	"github.com/shopgrid/admin-api/internal/infrastructure/config"
	mongodb "github.com/shopgrid/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopgrid/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The coupon service is handed in because the expiry sweeper shares it.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, couponService ports.CouponService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Infrastructure ---
	sessionStore := redisdb.NewSessionStore(rdb, time.Duration(cfg.Redis.SessionTTLMinutes)*time.Minute)
	listCache := redisdb.NewListCache(rdb, time.Duration(cfg.Redis.ListCacheTTLSeconds)*time.Second)
	snapshots := listing.NewSnapshots()

	authRepo := mongodb.NewAuthRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	withdrawalRepo := mongodb.NewWithdrawalRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	shopRepo := mongodb.NewShopRepository(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	sessionService := service.NewSessionService(sessionStore, shopRepo, log)
	orderService := service.NewOrderService(orderRepo, snapshots, listCache, log)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, shopRepo, snapshots, listCache, log)
	productService := service.NewProductService(productRepo, snapshots, listCache, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	shopService := service.NewShopService(shopRepo, authRepo, log)
	userService := service.NewUserService(authRepo, sessionStore, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	orderHandler := handler.NewOrderHandler(orderService)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalService)
	productHandler := handler.NewProductHandler(productService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	shopHandler := handler.NewShopHandler(shopService)
	couponHandler := handler.NewCouponHandler(couponService)
	userHandler := handler.NewUserHandler(userService)

	authMW := middleware.Auth(cfg.JWTSecret, sessionService)

	// --- Open routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Session routes (any authenticated role) ---
	e.GET("/me", sessionHandler.Me, authMW)
	e.POST("/logout", sessionHandler.Logout, authMW)
	e.GET("/nav", sessionHandler.Nav, authMW)

	// --- Admin section ---
	// The token check on this group is the authoritative boundary for
	// /admin/*; the Gate behind it is navigation UX.
	admin := e.Group("/admin", authMW, middleware.Gate("admin"))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/withdrawals", withdrawalHandler.List)
	admin.GET("/withdrawals/:id", withdrawalHandler.Get)
	admin.PUT("/withdrawals/:id/status", withdrawalHandler.UpdateStatus)
	admin.GET("/products", productHandler.List)
	admin.GET("/products/:id", productHandler.Get)
	admin.GET("/shops", shopHandler.List)
	admin.GET("/shops/:id", shopHandler.Get)
	admin.PUT("/shops/:id/active", shopHandler.SetActive)
	admin.GET("/coupons", couponHandler.List)
	admin.POST("/coupons", couponHandler.Create)
	admin.GET("/coupons/:id", couponHandler.Get)
	admin.PUT("/coupons/:id", couponHandler.Update)
	admin.DELETE("/coupons/:id", couponHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id/role", userHandler.AssignRole)
	// Taxonomy screens: categories, brands, tags, attributes, terms, faqs.
	admin.GET("/:resource", catalogHandler.List)
	admin.POST("/:resource", catalogHandler.Create)
	admin.GET("/:resource/:id", catalogHandler.Get)
	admin.PUT("/:resource/:id", catalogHandler.Update)
	admin.DELETE("/:resource/:id", catalogHandler.Delete)

	// --- SR section ---
	sr := e.Group("/sr", authMW, middleware.Gate("sr"))
	sr.GET("/orders", orderHandler.List)
	sr.GET("/orders/:id", orderHandler.Get)
	sr.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	sr.GET("/withdrawals", withdrawalHandler.List)
	sr.GET("/withdrawals/:id", withdrawalHandler.Get)

	// --- Vendor section ---
	vendor := e.Group("/vendor", authMW, middleware.Gate("vendor"))
	vendor.GET("/orders", orderHandler.List)
	vendor.GET("/orders/:id", orderHandler.Get)
	vendor.GET("/products", productHandler.List)
	vendor.POST("/products", productHandler.Create)
	vendor.GET("/products/:id", productHandler.Get)
	vendor.PUT("/products/:id", productHandler.Update)
	vendor.DELETE("/products/:id", productHandler.Delete)
	vendor.GET("/withdrawals", withdrawalHandler.List)
	vendor.POST("/withdrawals", withdrawalHandler.Create)
	vendor.GET("/withdrawals/:id", withdrawalHandler.Get)
	vendor.POST("/shops", shopHandler.Create)
	vendor.PUT("/shops/:id", shopHandler.Update)

	return e
}
