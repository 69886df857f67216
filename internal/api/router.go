package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/selvanails/selva-api/internal/api/handler"
	"github.com/selvanails/selva-api/internal/api/middleware"
	"github.com/selvanails/selva-api/internal/core/domain"
	"github.com/selvanails/selva-api/internal/core/ports"
	"github.com/selvanails/selva-api/internal/core/service"
	"github.com/selvanails/selva-api/internal/infrastructure/config"
	mongodb "github.com/selvanails/selva-api/internal/infrastructure/db/mongo"
	redisdb "github.com/selvanails/selva-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	dispatcher ports.PushDispatcher,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("selva"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	testimonialRepo := mongodb.NewTestimonialRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	subscriptions := redisdb.NewSubscriptionStore(rdb)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	catalog := service.NewCatalog(serviceRepo, log)
	blogService := service.NewBlogService(blogRepo, log)
	testimonialService := service.NewTestimonialService(testimonialRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, subscriptions, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	serviceHandler := handler.NewServiceHandler(catalog)
	blogHandler := handler.NewBlogHandler(blogService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authRequired := middleware.Auth(authService)
	adminOnly := []echo.MiddlewareFunc{authRequired, middleware.RBAC(domain.RoleAdmin)}

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Products + cart ---
	// Cart routes are registered before /:id so the static segment wins.
	products := e.Group("/api/products")
	products.POST("/cart", cartHandler.Add, authRequired)
	products.GET("/cart", cartHandler.List, authRequired)
	products.DELETE("/cart/:productId", cartHandler.Remove, authRequired)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly...)
	products.PUT("/:id", productHandler.Update, adminOnly...)
	products.DELETE("/:id", productHandler.Delete, adminOnly...)

	// --- Services ---
	services := e.Group("/api/services")
	services.GET("", serviceHandler.List)
	services.GET("/:id", serviceHandler.Get)
	services.POST("", serviceHandler.Create, adminOnly...)
	services.PUT("/:id", serviceHandler.Update, adminOnly...)
	services.DELETE("/:id", serviceHandler.Delete, adminOnly...)

	// --- Blog ---
	blog := e.Group("/api/blog")
	blog.GET("", blogHandler.List)
	blog.GET("/:id", blogHandler.Get)
	blog.POST("", blogHandler.Create, adminOnly...)
	blog.PUT("/:id", blogHandler.Update, adminOnly...)
	blog.DELETE("/:id", blogHandler.Delete, adminOnly...)

	// --- Testimonials ---
	// Creation stays public: customers submit their own reviews, which
	// remain invisible until an admin approves them.
	testimonials := e.Group("/api/testimonials")
	testimonials.GET("", testimonialHandler.List)
	testimonials.GET("/:id", testimonialHandler.Get)
	testimonials.POST("", testimonialHandler.Create)
	testimonials.PUT("/:id/approve", testimonialHandler.Approve, adminOnly...)
	testimonials.PUT("/:id", testimonialHandler.Update, adminOnly...)
	testimonials.DELETE("/:id", testimonialHandler.Delete, adminOnly...)

	// --- Notifications ---
	notifications := e.Group("/api/notifications", authRequired)
	notifications.GET("", notificationHandler.List)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)
	notifications.POST("/subscribe", notificationHandler.Subscribe)
	notifications.POST("/send", notificationHandler.Send, middleware.RBAC(domain.RoleAdmin))

	// --- Platform ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/api/initialize", healthHandler.Initialize)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
