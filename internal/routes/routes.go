package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucLeave "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/leave"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	leaveRepo := infraRepo.NewLeaveGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	doctorCache := cache.NewDoctorCache(cache.NewRedisClient(cfg))
	documentStore := storage.NewDocumentStore(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Slots,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Slots,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	adminEditAppointmentUC := ucAppointment.NewAdminEditAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Slots,
	)

	adminCancelAppointmentUC := ucAppointment.NewAdminCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	adminDeleteAppointmentUC := ucAppointment.NewAdminDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — LEAVES
	// ======================================================
	submitLeaveUC := ucLeave.NewSubmitLeaveRequest(
		leaveRepo,
		auditDispatcher,
	)

	decideLeaveUC := ucLeave.NewDecideLeaveRequest(
		leaveRepo,
		auditDispatcher,
	)

	listLeavesUC := ucLeave.NewListLeaveRequests(leaveRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, doctorCache)
	doctorHandler := handlers.NewDoctorHandler(db, appointmentRepo, doctorCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		getAvailabilityUC,
		listAppointmentsUC,
		adminEditAppointmentUC,
		adminCancelAppointmentUC,
		adminDeleteAppointmentUC,
	)

	leaveHandler := handlers.NewLeaveHandler(
		submitLeaveUC,
		decideLeaveUC,
		listLeavesUC,
		documentStore,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterPatient)
		api.POST("/auth/register/doctor", authHandler.RegisterDoctor)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 API PÚBLICA (formulário de agendamento)
		// ------------------------------
		api.GET("/specializations", doctorHandler.ListSpecializations)
		api.GET("/appointment-types", doctorHandler.ListAppointmentTypes)
		api.GET("/doctors", doctorHandler.ListBySpecialization)
		api.GET("/appointments/availability", appointmentHandler.GetAvailability)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)

			// paciente
			patient := secured.Group("/")
			patient.Use(middleware.RequireAccountType(models.AccountPatient))
			{
				patient.POST("/appointments", appointmentHandler.Create)
				patient.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			}

			// médico
			doctor := secured.Group("/")
			doctor.Use(middleware.RequireAccountType(models.AccountDoctor))
			{
				doctor.POST("/appointments/:id/summary", appointmentHandler.Complete)
				doctor.POST("/leaves", leaveHandler.Submit)
				doctor.GET("/leaves", leaveHandler.ListMine)
			}

			// admin
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAccountType(models.AccountAdmin))
			{
				admin.POST("/appointments", appointmentHandler.AdminCreate)
				admin.PUT("/appointments/:id", appointmentHandler.AdminEdit)
				admin.PATCH("/appointments/:id/cancel", appointmentHandler.AdminCancel)
				admin.DELETE("/appointments/:id", appointmentHandler.AdminDelete)

				admin.GET("/leaves", leaveHandler.AdminList)
				admin.PATCH("/leaves/:id/approve", leaveHandler.Approve)
				admin.PATCH("/leaves/:id/reject", leaveHandler.Reject)
			}
		}
	}
}
