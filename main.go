package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"store-api/controllers"
	"store-api/database"
	"store-api/logger"
	"store-api/middleware"
	"store-api/providers"
	"store-api/repository"
	"store-api/routes"
	servicepkg "store-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zlog := logger.MustNew(getEnv("APP_ENV", "development"))
	defer zlog.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		zlog.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(database.Config{
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	}, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	// DI chain
	paymentProvider := providers.NewStripeProvider(cfg.StripeSecretKey)

	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	messageRepo := repository.NewGormMessageRepository(db)

	ctrls := routes.Controllers{
		Catalog:  controllers.NewCatalogController(servicepkg.NewCatalogService(productRepo, zlog)),
		Cart:     controllers.NewCartController(servicepkg.NewCartService(cartRepo, zlog)),
		User:     controllers.NewUserController(servicepkg.NewUserService(userRepo, zlog)),
		Order:    controllers.NewOrderController(servicepkg.NewOrderService(orderRepo, zlog)),
		Message:  controllers.NewMessageController(servicepkg.NewMessageService(messageRepo, zlog)),
		Checkout: controllers.NewCheckoutController(servicepkg.NewCheckoutService(paymentProvider, zlog)),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.RequestTimeout(30 * time.Second))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "store-api"})
	})

	routes.Register(r, ctrls)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zlog.Info("Store API started", zap.String("port", cfg.Port))
	<-quit
	zlog.Info("Shutting down store API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zlog.Info("Server exited cleanly")
}
