package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/api/handler"
	"github.com/clinicore/clinic-system/internal/api/middleware"
	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/service"
	"github.com/clinicore/clinic-system/internal/infrastructure/config"
	"github.com/clinicore/clinic-system/internal/infrastructure/db/postgres"
	redisdb "github.com/clinicore/clinic-system/internal/infrastructure/db/redis"
	"github.com/clinicore/clinic-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	assistantRepo := postgres.NewAssistantRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	// --- Services ---
	reportCache := redisdb.NewReportCache(rdb, cfg.Redis.ReportTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	doctorService := service.NewDoctorService(doctorRepo, userRepo, log)
	patientService := service.NewPatientService(patientRepo, doctorRepo, log)
	assistantService := service.NewAssistantService(assistantRepo, userRepo, doctorRepo, patientRepo, assignmentRepo, log)
	treatmentService := service.NewTreatmentService(treatmentRepo, applicationRepo, assignmentRepo, patientRepo, doctorRepo, assistantRepo, log)
	reportService := service.NewReportService(doctorRepo, userRepo, patientRepo, treatmentRepo, applicationRepo, assistantRepo, reportCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	patientHandler := handler.NewPatientHandler(patientService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	treatmentHandler := handler.NewTreatmentHandler(treatmentService)
	reportHandler := handler.NewReportHandler(reportService)

	auth := middleware.Auth(cfg.JWTSecret, cfg.AllowAnonymous)
	managerOnly := middleware.RequireRole(domain.RoleGeneralManager)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/users", authHandler.Register)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	e.GET("/me", authHandler.Me, auth)
	e.GET("/users", authHandler.ListUsers, auth, managerOnly)
	e.GET("/users/:id", authHandler.GetUser, auth) // self-read allowed, see service

	doctors := e.Group("/doctors", auth, managerOnly)
	doctors.GET("", doctorHandler.List)
	doctors.POST("", doctorHandler.Create)
	doctors.GET("/:id", doctorHandler.Get)
	doctors.PUT("/:id", doctorHandler.Update)
	doctors.DELETE("/:id", doctorHandler.Deactivate)

	patients := e.Group("/patients", auth)
	patients.GET("", patientHandler.List)
	patients.POST("", patientHandler.Create)
	patients.GET("/:id", patientHandler.Get)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Deactivate)

	assistants := e.Group("/assistants", auth)
	assistants.GET("", assistantHandler.List)
	assistants.POST("", assistantHandler.Create)
	assistants.GET("/patients/assignments", assistantHandler.ListAssignments)
	assistants.POST("/patients/assign", assistantHandler.Assign)
	assistants.PUT("/patients/assignments/:id", assistantHandler.UpdateAssignment)
	assistants.POST("/treatments/apply", treatmentHandler.Apply)
	assistants.GET("/treatments/applications", treatmentHandler.ListApplications)
	assistants.GET("/:id", assistantHandler.Get)
	assistants.PUT("/:id", assistantHandler.Update)
	assistants.DELETE("/:id", assistantHandler.Deactivate)

	treatments := e.Group("/treatments", auth)
	treatments.GET("", treatmentHandler.List)
	treatments.POST("", treatmentHandler.Create)
	treatments.GET("/:id", treatmentHandler.Get)
	treatments.PUT("/:id", treatmentHandler.Update)
	treatments.DELETE("/:id", treatmentHandler.Delete)

	reports := e.Group("/reports", auth)
	reports.GET("/doctors-patients", reportHandler.DoctorsPatients)
	reports.GET("/patients/:id/treatments", reportHandler.PatientTreatments)

	return e
}
