package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecomlite/internal/config"
	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/server/http/handlers"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
)

// maxRequestBody caps inflated gzip request bodies.
const maxRequestBody = 10 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.FrontendURL))
	// gzip must wrap ErrorResponder: error bodies are written after handlers
	// return and need the compressing writer still open.
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.ErrorResponder(logger, cfg.IsProduction()))
	engine.Use(middleware.DecompressRequest(maxRequestBody))

	userHandler := handlers.NewUserHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade)

	authRequired := middleware.AuthRequired(facade)
	adminOnly := middleware.AdminOnly()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM)

	api := engine.Group("/api")
	api.GET("/health", handlers.Health)

	users := api.Group("/users")
	users.POST("", limiter.Handler(), userHandler.Register)
	users.POST("/login", limiter.Handler(), userHandler.Login)
	users.GET("/profile", authRequired, userHandler.Profile)
	users.PUT("/profile", authRequired, userHandler.UpdateProfile)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", authRequired, adminOnly, productHandler.Create)
	products.PUT("/:id", authRequired, adminOnly, productHandler.Update)
	products.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("/myorders", orderHandler.Mine)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("", adminOnly, orderHandler.List)
	orders.PUT("/:id/deliver", adminOnly, orderHandler.Deliver)

	pay := api.Group("/payment")
	pay.GET("/key", paymentHandler.Key)
	pay.POST("/create-order", authRequired, paymentHandler.CreateOrder)
	pay.POST("/verify", authRequired, paymentHandler.Verify)
	pay.GET("/link", authRequired, paymentHandler.Link)
	if cfg.StatusCallbackEnabled {
		pay.POST("/update-status", authRequired, paymentHandler.UpdateStatus)
	} else {
		logger.Info("payment status callback route disabled")
	}

	upload := api.Group("/upload", authRequired, adminOnly)
	upload.POST("", uploadHandler.Upload)
	upload.DELETE("/*publicId", uploadHandler.Delete)

	engine.NoRoute(func(c *gin.Context) {
		_ = c.Error(middleware.WithMessage(domainErrors.ErrNotFound, "Not Found - "+c.Request.URL.Path))
	})

	return engine
}
