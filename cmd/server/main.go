package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandhu28/HOCMAN/internal/adapters/http/middleware"
	"github.com/sandhu28/HOCMAN/internal/adapters/http/routes"
	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/models"
	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/repositories"
	"github.com/sandhu28/HOCMAN/internal/config"
	"github.com/sandhu28/HOCMAN/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/sandhu28/HOCMAN/docs" // Swagger docs
)

// @title HOCMAN API
// @version 1.0
// @description Hostel maintenance complaint system API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hocman.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.hocman.app
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the administrator registry when empty
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed administrator registry: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HOCMAN API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	complaintService := routes.Setup(app, db, cfg)

	// Scheduled cleanup (expired tokens nightly, stale proposals every 10 min)
	maintenanceService := services.NewMaintenanceService(
		repositories.NewRefreshTokenRepository(db),
		complaintService,
	)
	maintenanceService.Start()
	defer maintenanceService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
