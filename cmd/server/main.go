package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrlink/internal/auth"
	"qrlink/internal/config"
	"qrlink/internal/handler"
	"qrlink/internal/model"
	"qrlink/internal/mq"
	"qrlink/internal/qr"
	"qrlink/internal/repository"
	"qrlink/internal/service"
	"qrlink/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title QRLink API
// @version 1.0
// @description Short link and QR code issuance service with scan analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ producer (optional, can be nil)
	var scanProducer mq.ProducerInterface
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			scanProducer = mqProducer
		}
	}

	// Initialize services
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	quotaSvc := service.NewQuotaService(mysqlRepo)
	scanSvc := service.NewScanService(mysqlRepo, mysqlRepo, scanProducer)
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, bloomSvc, quotaSvc, scanSvc, qr.NewPNGEncoder(), cfg.Server.BaseURL)
	analyticsSvc := service.NewAnalyticsService(mysqlRepo)
	accountSvc := service.NewAccountService(mysqlRepo, tokens)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Setup static files for 404 page
	router.LoadHTMLGlob("templates/*")

	// Handlers
	linkHandler := handler.NewLinkHandler(linkSvc, accountSvc)
	redirectHandler := handler.NewRedirectHandler(linkSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, accountSvc)
	accountHandler := handler.NewAccountHandler(accountSvc, cfg.Billing.WebhookSecret)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", accountHandler.Register)
		v1.POST("/auth/login", accountHandler.Login)
		v1.GET("/auth/me", middleware.Auth(tokens), accountHandler.Me)

		v1.POST("/billing/webhook", accountHandler.PlanWebhook)

		links := v1.Group("/links")
		{
			links.POST("", middleware.OptionalAuth(tokens), linkHandler.Create)
			links.GET("", middleware.Auth(tokens), linkHandler.List)
			links.GET("/:id", middleware.Auth(tokens), linkHandler.Get)
			links.PATCH("/:id", middleware.Auth(tokens), linkHandler.Update)
			links.DELETE("/:id", middleware.Auth(tokens), linkHandler.Delete)
			links.GET("/:id/analytics", middleware.Auth(tokens), analyticsHandler.LinkAnalytics)
			links.GET("/:id/export", middleware.Auth(tokens), analyticsHandler.Export)
		}

		v1.GET("/dashboard", middleware.Auth(tokens), analyticsHandler.Dashboard)
	}

	// Redirect routes (short identifiers)
	router.GET("/r/:identifier", redirectHandler.Redirect)
	router.GET("/r/:identifier/qr", redirectHandler.QR)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"bloom": gin.H{
				"available": bloomSvc.IsAvailable(c.Request.Context()),
				"capacity":  bloomSvc.GetCapacity(),
			},
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that archives to MySQL
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *model.ScanMessage) error {
			entry := &model.ScanArchiveEntry{
				Identifier: msg.Identifier,
				LinkID:     msg.LinkID,
				IPAddress:  msg.IPAddress,
				UserAgent:  msg.UserAgent,
				Referrer:   msg.Referrer,
				Country:    msg.Country,
				City:       msg.City,
				ScannedAt:  msg.ScannedAt,
			}
			return mysqlRepo.SaveArchiveEntry(ctx, entry)
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
