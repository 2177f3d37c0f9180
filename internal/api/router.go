package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/medipoint/patient-portal/internal/api/handler"
	"github.com/medipoint/patient-portal/internal/api/middleware"
	"github.com/medipoint/patient-portal/internal/core/service"
	"github.com/medipoint/patient-portal/internal/core/validation"
	"github.com/medipoint/patient-portal/internal/infrastructure/db/postgres"
	redisdb "github.com/medipoint/patient-portal/internal/infrastructure/db/redis"
	"github.com/medipoint/patient-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	patientRepo := postgres.NewPatientRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	prescriptionRepo := postgres.NewPrescriptionRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	tokenStore := redisdb.NewRefreshTokenStore(rdb)

	passChecks := []validation.PasswordValidator{validation.SimilarityValidator{}}
	common, err := validation.NewCommonPasswordValidatorFromFile(cfg.Password.CommonPasswordsFile)
	if err != nil {
		return nil, err
	}
	passChecks = append(passChecks, common, validation.NumericValidator{})
	pipeline := validation.NewPipeline(patientRepo, passChecks...)

	authService := service.NewAuthService(
		patientRepo, pipeline, tokenStore,
		cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL,
		cfg.Password.BcryptCost, log,
	)
	profileService := service.NewProfileService(patientRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, log)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo)
	recordService := service.NewRecordService(recordRepo)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionService)
	recordHandler := handler.NewRecordHandler(recordService, cfg.MediaBaseURL)

	// --- Public routes ---
	e.POST("/register/", authHandler.Register)
	e.POST("/token/", authHandler.Token)
	e.POST("/token/refresh/", authHandler.Refresh)

	// --- Authenticated routes: everything below is scoped to the caller ---
	auth := e.Group("", middleware.Auth(cfg.JWT.Secret))
	auth.GET("/me/", profileHandler.Get)
	auth.PUT("/me/update/", profileHandler.Update)
	auth.PATCH("/me/update/", profileHandler.Update)

	auth.GET("/appointments/", appointmentHandler.List)
	auth.POST("/appointments/", appointmentHandler.Create)
	auth.GET("/appointments/:id/", appointmentHandler.Get)
	auth.PUT("/appointments/:id/", appointmentHandler.Update)
	auth.PATCH("/appointments/:id/", appointmentHandler.Update)
	auth.DELETE("/appointments/:id/", appointmentHandler.Delete)
	auth.GET("/last-visit/", appointmentHandler.LastVisit)

	auth.GET("/prescriptions/", prescriptionHandler.List)
	auth.GET("/records/", recordHandler.List)
	auth.GET("/record-count/", recordHandler.Count)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
