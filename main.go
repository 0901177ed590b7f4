package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studio-api/internal/auth"
	"studio-api/internal/config"
	"studio-api/internal/handlers"
	"studio-api/internal/kafka"
	"studio-api/internal/logger"
	"studio-api/internal/middleware"
	"studio-api/internal/redis"
	"studio-api/internal/services"
	"studio-api/internal/storage"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "Studio API starting up...")

	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	log.LogProcess("DATABASE", "Initializing MySQL database...")
	store, err := storage.NewMySQLStore(cfg.Database, log)
	if err != nil {
		log.Fatal("DATABASE", "Failed to initialize MySQL: "+err.Error())
	}
	defer store.Close()
	log.LogDatabase("INIT", "mysql", "MySQL storage initialized successfully")

	log.LogProcess("KAFKA", "Initializing Kafka producer...")
	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.MockMode, log)
	if err != nil {
		log.Fatal("KAFKA", "Failed to create Kafka producer: "+err.Error())
	}
	defer producer.Close()

	// Redis is optional. Without it the admin lists just hit MySQL.
	var cache *redis.Cache
	cache, err = redis.NewCache(cfg.Redis, log)
	if err != nil {
		log.Warn("CACHE", "Redis unavailable, admin list caching disabled: "+err.Error())
		cache = nil
	} else {
		defer cache.Close()
		log.LogProcess("CACHE", "Redis cache initialized")
	}

	tokens := auth.NewManager(cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)

	emailService := services.NewEmailService(cfg.Email, cfg.Studio, log)
	bookingService := services.NewBookingService(store, emailService, producer, cache, log)
	contactService := services.NewContactService(store, emailService, producer, cache, log)
	catalogService := services.NewCatalogService(store, log)
	authService := services.NewAuthService(store, tokens, log)
	log.LogProcess("SERVICE", "All services initialized")

	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	log.LogProcess("HANDLER", "All handlers initialized")

	router := setupRouter(cfg, store, cache, tokens,
		bookingHandler, contactHandler, catalogHandler, authHandler)
	log.LogProcess("ROUTER", "HTTP router configured")

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on port "+cfg.Server.Port)
		log.Info("STARTUP", "Studio API is ready to accept requests")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "Studio API shutdown completed successfully")
}

func setupRouter(
	cfg *config.Config,
	store *storage.MySQLStore,
	cache *redis.Cache,
	tokens *auth.Manager,
	bookingHandler *handlers.BookingHandler,
	contactHandler *handlers.ContactHandler,
	catalogHandler *handlers.CatalogHandler,
	authHandler *handlers.AuthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.EnhancedLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders(log))
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		checks := gin.H{"database": "ok"}
		if err := store.HealthCheck(c.Request.Context()); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		}
		if cache != nil {
			checks["cache"] = "ok"
			if err := cache.HealthCheck(c.Request.Context()); err != nil {
				checks["cache"] = err.Error()
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"checks":    checks,
			"timestamp": time.Now().UTC(),
			"service":   "studio-api",
			"version":   "1.0.0",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// Public endpoints, rate limited against scripted floods.
		public := api.Group("")
		public.Use(middleware.RateLimit(log))
		{
			public.POST("/bookings", bookingHandler.Submit)
			public.POST("/contact", contactHandler.Submit)
			public.GET("/offers", catalogHandler.ListOffers(true))
			public.GET("/portfolio", catalogHandler.ListPortfolio)
			public.GET("/testimonials", catalogHandler.ListTestimonials(true))
		}

		api.POST("/admin/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(tokens, log))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.GET("/bookings/:id", bookingHandler.Get)
			admin.PATCH("/bookings/:id", bookingHandler.UpdateStatus)

			admin.GET("/messages", contactHandler.List)
			admin.PATCH("/messages/:id", contactHandler.UpdateReadStatus)
			admin.DELETE("/messages/:id", contactHandler.Delete)
			admin.POST("/messages/read-all", contactHandler.MarkAllRead)

			admin.GET("/offers", catalogHandler.ListOffers(false))
			admin.POST("/offers", catalogHandler.CreateOffer)
			admin.PATCH("/offers/:id", catalogHandler.UpdateOffer)
			admin.DELETE("/offers/:id", catalogHandler.DeleteOffer)

			admin.POST("/portfolio", catalogHandler.CreatePortfolioItem)
			admin.PATCH("/portfolio/:id", catalogHandler.UpdatePortfolioItem)
			admin.DELETE("/portfolio/:id", catalogHandler.DeletePortfolioItem)

			admin.GET("/testimonials", catalogHandler.ListTestimonials(false))
			admin.POST("/testimonials", catalogHandler.CreateTestimonial)
			admin.PATCH("/testimonials/:id", catalogHandler.UpdateTestimonial)
			admin.DELETE("/testimonials/:id", catalogHandler.DeleteTestimonial)
		}
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}
