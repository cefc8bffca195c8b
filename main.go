package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"warung/internal/config"
	"warung/internal/database"
	"warung/internal/handlers"
	"warung/internal/middleware"
	"warung/internal/repositories"
	"warung/internal/services"
	"warung/internal/validation"
	"warung/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// --- Persistence ---
	client, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	productRepo := repositories.NewMongoProductRepository(client.Database(cfg.MongoDatabase), cfg.OperationTimeout)
	if err := productRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("failed to ensure product indexes", zap.Error(err))
	}

	// --- Services and handlers ---
	productService := services.NewProductService(productRepo, validation.New(), log)
	productHandler := handlers.NewProductHandler(productService, cfg.IsDevelopment())
	metaHandler := handlers.NewMetaHandler(cfg)

	// --- HTTP server ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))

	apiV1 := app.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	metaHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.Env))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
