package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/audit"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/cache"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/healthcare-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/middleware"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/healthcare-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	policy domain.WorkingHours,
) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	availabilityCache := cache.NewAvailabilityCache(rdb)
	tokenDenylist := cache.NewTokenDenylist(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(
		appointmentRepo,
		policy,
		availabilityCache,
		auditDispatcher,
		loc,
	)

	cancelUC := ucAppointment.NewCancel(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
		loc,
		cfg.CancelCutoffHours,
	)

	resolveUC := ucAppointment.NewResolve(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
		loc,
	)

	listPatientUC := ucAppointment.NewListPatientAppointments(appointmentRepo)
	listProfessionalUC := ucAppointment.NewListProfessionalAppointments(appointmentRepo)
	directoryUC := ucAppointment.NewListProfessionals(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokenDenylist)

	patientHandler := handlers.NewPatientHandler(
		bookUC,
		cancelUC,
		listPatientUC,
		directoryUC,
		cfg,
	)

	healthcareHandler := handlers.NewHealthcareHandler(
		resolveUC,
		listProfessionalUC,
		cfg,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/category", authHandler.Category)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokenDenylist))
		{
			secured.POST("/users/logout", authHandler.Logout)

			// ------------------------------
			// PATIENT
			// ------------------------------
			patient := secured.Group("/users")
			patient.Use(middleware.RequireRole(models.RolePatient))
			{
				patient.GET("", patientHandler.Directory)
				patient.GET("/:user_id/appointments", patientHandler.List)
				patient.POST("/:user_id/appointments", patientHandler.Book)
				patient.POST("/:user_id/appointments/:appointment_id", patientHandler.Cancel)
			}

			// ------------------------------
			// HEALTHCARE PROFESSIONAL
			// ------------------------------
			healthcare := secured.Group("/healthcare")
			healthcare.Use(middleware.RequireRole(models.RoleProfessional))
			{
				healthcare.GET("/:user_id/appointments", healthcareHandler.List)
				healthcare.POST("/:user_id/appointments/:id", healthcareHandler.Resolve)
			}
		}
	}
}
