package routes

import (
	"time"

	"github.com/sandhu28/HOCMAN/internal/adapters/http/handlers"
	"github.com/sandhu28/HOCMAN/internal/adapters/http/middleware"
	"github.com/sandhu28/HOCMAN/internal/adapters/persistence/repositories"
	"github.com/sandhu28/HOCMAN/internal/config"
	"github.com/sandhu28/HOCMAN/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. It also wires the
// repository and service graph, and returns the complaint service so the
// maintenance scheduler can share its proposal store.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ComplaintService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, adminRepo, cfg)
	complaintService := services.NewComplaintService(complaintRepo, userRepo)
	profileService := services.NewProfileService(userRepo, adminRepo, refreshTokenRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	profileHandler := handlers.NewProfileHandler(profileService, cfg)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited, never cached)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Complaint routes (authenticated residents and admins)
	complaintRoutes := apiV1.Group("/complaints")
	complaintRoutes.Use(middleware.AuthMiddleware(cfg))
	setupComplaintRoutes(complaintRoutes, complaintHandler)

	// Admin routes (hostel-scoped listings)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, complaintHandler)

	// Profile routes (re-auth gated mutations, strictly rate limited)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, profileHandler)

	return complaintService
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	router.Use(middleware.NoCacheHeaders())

	// Public routes (5 req/min/IP)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupComplaintRoutes configures complaint lifecycle routes
func setupComplaintRoutes(router fiber.Router, handler *handlers.ComplaintHandler) {
	router.Get("/", middleware.PrivateCacheHeaders(30*time.Second), handler.List)
	router.Post("/", handler.Create)
	router.Post("/:id/done", handler.ProposeDone)
	router.Post("/confirm", handler.ConfirmDone)
	router.Post("/cancel", handler.CancelDone)
}

// setupAdminRoutes configures admin-only routes
func setupAdminRoutes(router fiber.Router, handler *handlers.ComplaintHandler) {
	router.Get("/complaints", middleware.PrivateCacheHeaders(30*time.Second), handler.AdminList)
}

// setupProfileRoutes configures identity-sensitive profile routes (3 req/min/IP)
func setupProfileRoutes(router fiber.Router, handler *handlers.ProfileHandler) {
	router.Use(middleware.NoCacheHeaders())

	router.Put("/password", middleware.StrictRateLimiter(), handler.ChangePassword)
	router.Put("/hostel", middleware.AdminOnly(), middleware.StrictRateLimiter(), handler.ChangeHostel)
}
