package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mosadie/charity-api/internal/api/handler"
	"github.com/mosadie/charity-api/internal/api/middleware"
	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
	"github.com/mosadie/charity-api/internal/core/service"
	"github.com/mosadie/charity-api/internal/infrastructure/config"
	mongorepo "github.com/mosadie/charity-api/internal/infrastructure/db/mongo"
	redisstore "github.com/mosadie/charity-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route protection follows three tiers: public (no identity needed), employee
// (employee or admin), and admin only. The Session middleware runs globally
// and never rejects; the role gates on each group do.
func NewRouter(db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("charity"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)
	volunteerRepo := mongorepo.NewVolunteerRepository(db)
	donationRepo := mongorepo.NewDonationRepository(db)
	galleryRepo := mongorepo.NewGalleryRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)
	dedup := redisstore.NewDuplicateChecker(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	projectService := service.NewProjectService(projectRepo, log)
	staffService := service.NewStaffService(userRepo, notifier, log)
	submissionService := service.NewSubmissionService(contactRepo, volunteerRepo, dedup, notifier, log)
	donationService := service.NewDonationService(donationRepo, log)
	galleryService := service.NewGalleryService(galleryRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	staffHandler := handler.NewStaffHandler(staffService)
	contactHandler := handler.NewContactHandler(submissionService)
	volunteerHandler := handler.NewVolunteerHandler(submissionService)
	donationHandler := handler.NewDonationHandler(donationService)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	// Identity resolution for every request; anonymous requests pass through.
	e.Use(middleware.Session(cfg.JWTSecret, authService))

	employeeGate := middleware.RequireRole(domain.RoleEmployee)
	adminGate := middleware.RequireRole(domain.RoleAdmin)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout, middleware.RequireAuth())
	v1.GET("/auth/session", authHandler.Session)

	// --- Public intakes ---
	v1.POST("/contact", contactHandler.Submit)
	v1.POST("/volunteers", volunteerHandler.Submit)
	v1.POST("/donations", donationHandler.Donate)

	// --- Public reads ---
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.GET("/gallery", galleryHandler.List)

	// --- Employee tier: back-office review + gallery writes ---
	backoffice := v1.Group("/admin", employeeGate)
	backoffice.GET("/messages", contactHandler.List)
	backoffice.PATCH("/messages/:id", contactHandler.Mark)
	backoffice.GET("/volunteers", volunteerHandler.List)
	backoffice.PATCH("/volunteers/:id", volunteerHandler.Review)

	v1.POST("/gallery", galleryHandler.Add, employeeGate)
	v1.DELETE("/gallery/:id", galleryHandler.Remove, employeeGate)

	// --- Admin tier: project writes, staff accounts, donation views ---
	v1.POST("/projects", projectHandler.Create, adminGate)
	v1.PATCH("/projects/:id", projectHandler.Update, adminGate)
	v1.DELETE("/projects/:id", projectHandler.Delete, adminGate)

	backoffice.GET("/staff", staffHandler.List, adminGate)
	backoffice.POST("/staff", staffHandler.Create, adminGate)
	backoffice.GET("/staff/:id", staffHandler.Get, adminGate)
	backoffice.PATCH("/staff/:id", staffHandler.Update, adminGate)
	backoffice.DELETE("/staff/:id", staffHandler.Delete, adminGate)

	backoffice.GET("/donations", donationHandler.ListDonations, adminGate)
	backoffice.GET("/donators", donationHandler.ListDonators, adminGate)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
