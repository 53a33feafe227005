package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tareqferdous/foodhub-api/internal/api/handler"
	"github.com/tareqferdous/foodhub-api/internal/api/middleware"
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/service"
	mongorepo "github.com/tareqferdous/foodhub-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/tareqferdous/foodhub-api/internal/infrastructure/db/redis"
)

// RouterDeps carries the external dependencies the router wires together.
type RouterDeps struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	JWTSecret  string
	Log        zerolog.Logger
	Dispatcher handler.EventDispatcher
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("foodhub"))
	e.Use(middleware.RouteGuard(middleware.NewJWTSessionResolver(deps.JWTSecret)))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(deps.Mongo)
	providerRepo := mongorepo.NewProviderRepository(deps.Mongo)
	mealRepo := mongorepo.NewMealRepository(deps.Mongo)
	categoryRepo := mongorepo.NewCategoryRepository(deps.Mongo)
	orderRepo := mongorepo.NewOrderRepository(deps.Mongo)
	reviewRepo := mongorepo.NewReviewRepository(deps.Mongo)
	cartRepo := redisrepo.NewCartRepository(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, providerRepo, deps.JWTSecret, 24*time.Hour)
	cartService := service.NewCartService(cartRepo, deps.Log)
	mealService := service.NewMealService(mealRepo, categoryRepo, providerRepo, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo)
	providerService := service.NewProviderService(providerRepo)
	orderService := service.NewOrderService(orderRepo, mealRepo, providerRepo, deps.Log)
	reviewService := service.NewReviewService(reviewRepo, orderRepo, userRepo)
	adminService := service.NewAdminService(userRepo, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	mealHandler := handler.NewMealHandler(mealService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	providerHandler := handler.NewProviderHandler(providerService)
	orderHandler := handler.NewOrderHandler(orderService, cartService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	adminHandler := handler.NewAdminHandler(adminService)
	eventHandler := handler.NewEventHandler(deps.Dispatcher)

	auth := middleware.Auth(deps.JWTSecret)
	optionalAuth := middleware.OptionalAuth(deps.JWTSecret)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Public catalogue ---
	v1.GET("/meals", mealHandler.List)
	v1.GET("/meals/:id", mealHandler.Get)
	v1.GET("/meals/:id/reviews", reviewHandler.List)
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/providers", providerHandler.List)
	v1.GET("/providers/:id", providerHandler.Get)

	// --- Cart: works for guests and authenticated users alike ---
	cart := v1.Group("/cart", optionalAuth)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:meal_id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:meal_id", cartHandler.RemoveItem)
	cart.DELETE("/providers/:provider_id", cartHandler.ClearProvider)

	// --- Orders ---
	orders := v1.Group("/orders", auth)
	orders.POST("", orderHandler.Place, middleware.RBAC(domain.RoleCustomer))
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)

	// --- Reviews ---
	v1.POST("/meals/:id/reviews", reviewHandler.Create, auth, middleware.RBAC(domain.RoleCustomer))

	// --- Provider menu management ---
	provider := v1.Group("/provider", auth, middleware.RBAC(domain.RoleProvider, domain.RoleAdmin))
	provider.POST("/meals", mealHandler.Create)
	provider.PUT("/meals/:id", mealHandler.Update)
	provider.DELETE("/meals/:id", mealHandler.Delete)

	// --- Status events (provider dashboards and integrations) ---
	events := v1.Group("/events", auth, middleware.RBAC(domain.RoleProvider, domain.RoleAdmin))
	events.POST("", eventHandler.Receive)
	events.POST("/batch", eventHandler.ReceiveBatch)

	// --- Admin ---
	admin := v1.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.ChangeRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/categories", categoryHandler.Create)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	return e
}
