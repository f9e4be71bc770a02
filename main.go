package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"linkly-be/internal/config"
	"linkly-be/internal/controllers"
	"linkly-be/internal/database"
	"linkly-be/internal/geoip"
	"linkly-be/internal/jwt"
	"linkly-be/internal/middleware"
	"linkly-be/internal/repository"
	"linkly-be/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database ready, migrations applied")

	// Redis is optional; rate limiting falls back to in-memory buckets
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: invalid REDIS_URL (%v). Continuing without Redis.", err)
		} else {
			redisClient = redis.NewClient(opt)
			defer redisClient.Close()
			log.Println("Connected to Redis")
		}
	}

	// GeoIP is optional; without a database every click is "Unknown"
	geo := geoip.NewNoopResolver()
	if cfg.GeoIPDBPath != "" {
		resolver, err := geoip.NewMaxMindResolver(cfg.GeoIPDBPath)
		if err != nil {
			log.Printf("Warning: failed to open GeoIP database (%v). Geo fields will be Unknown.", err)
		} else {
			geo = resolver
		}
	}

	// Repositories
	urlRepo := repository.NewURLRepository(db)
	userRepo := repository.NewUserRepository(db)
	clickRepo := repository.NewClickRepository(db)

	// Services
	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	authService := service.NewAuthService(userRepo, jwtService)
	urlService := service.NewURLService(urlRepo, clickRepo, geo, cfg.BaseURL)
	analyticsService := service.NewAnalyticsService(urlRepo, clickRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	shortenerController := controllers.NewShortenerController(urlService, analyticsService)
	qrcodeController := controllers.NewQRCodeController(urlService, cfg.BaseURL)

	// Rate limiters: a shared fixed window in Redis when available, per-IP
	// token buckets otherwise
	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	var createLimit gin.HandlerFunc
	if redisClient != nil {
		createLimit = middleware.NewRedisRateLimiter(
			redisClient, int64(cfg.RateLimitCreatePerMin), time.Minute, "create",
		).LimitMiddleware()
	} else {
		createLimit = middleware.NewRateLimiter(
			rate.Limit(float64(cfg.RateLimitCreatePerMin)/60.0), cfg.RateLimitCreateBurst,
		).LimitMiddleware()
	}

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(generalLimiter.LimitMiddleware())
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		urls := api.Group("/urls")
		{
			// Public lookups - no click recorded
			urls.GET("/info/:code", shortenerController.GetURLInfo)
			urls.GET("/qr/:code", qrcodeController.GenerateQRCode)

			// Protected routes - require JWT authentication
			protected := urls.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService))
			{
				protected.POST("", createLimit, shortenerController.CreateShortURL)
				protected.GET("", shortenerController.GetUserURLs)
				protected.GET("/:id/analytics", shortenerController.GetURLAnalytics)
			}
		}
	}

	// Redirect endpoint - records a click
	router.GET("/:code", shortenerController.RedirectToURL)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
