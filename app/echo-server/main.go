package main

import (
	"context"
	"fmt"
	"goodsStore/app/echo-server/router"
	"goodsStore/business/artist"
	"goodsStore/business/goods"
	"goodsStore/business/orders"
	"goodsStore/business/product"
	"goodsStore/business/user"
	"goodsStore/internal/middleware"
	psqlRepo "goodsStore/internal/repository/postgres"
	"goodsStore/internal/rest"
	"goodsStore/pkg/config"
	"goodsStore/pkg/database"
	redisdb "goodsStore/pkg/database/redis"
	"goodsStore/pkg/logger"
	"goodsStore/pkg/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "db_driver", cfg.Database.Driver)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	logger.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", err)
		}
		logger.Info("Database schema migrated")
	}

	metrics.Init()

	// Init repo
	goodsRepo := psqlRepo.NewGoodsRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	transactor := psqlRepo.NewTransactor(db)
	artistRepo := psqlRepo.NewArtistRepository(db)
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)

	redisClient, orderOpts := idempotencyStore(context.Background(), cfg.Redis)
	orderOpts = append(orderOpts, orders.WithStrictTransitions(cfg.Orders.StrictTransitions))

	// Init service
	goodsService := goods.NewGoodsService(goodsRepo)
	ordersService := orders.NewOrdersService(transactor, ordersRepo, goodsRepo, orderOpts...)
	artistService := artist.NewArtistService(artistRepo)
	userService := user.NewUserService(userRepo)
	productService := product.NewProductService(productRepo)

	// Init handler
	goodsHandler := rest.NewGoodsHandler(goodsService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	artistHandler := rest.NewArtistHandler(artistService)
	userHandler := rest.NewUserHandler(userService)
	productHandler := rest.NewProductHandler(productService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, rest.HeaderIdempotencyKey},
	}))

	guards := router.OpenGuards()
	if cfg.JWT.SecretKey != "" {
		guards = router.Guards{
			AuthRequired: middleware.AuthMiddleware(cfg.JWT.SecretKey),
			AdminOnly:    middleware.AdminOnly(),
			SelfOrAdmin:  middleware.SelfOrAdmin("userId"),
		}
	} else {
		logger.Warn("JWT_SECRET is not set, admin routes are open")
	}

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api")
	router.SetupGoodsRoutes(api, goodsHandler, guards)
	router.SetOrdersRoutes(api, ordersHandler, guards)
	router.SetupArtistRoutes(api, artistHandler, guards)
	router.SetupUserRoutes(api, userHandler, guards)
	router.SetupProductRoutes(api, productHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	if err := redisdb.Close(redisClient); err != nil {
		logger.Error("Failed to close redis client", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
