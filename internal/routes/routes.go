package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/audit"
	"github.com/glowhub/salon-scheduler/internal/config"
	domain "github.com/glowhub/salon-scheduler/internal/domain/schedule"
	"github.com/glowhub/salon-scheduler/internal/handlers"
	"github.com/glowhub/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/glowhub/salon-scheduler/internal/infra/repository"
	"github.com/glowhub/salon-scheduler/internal/logger"
	"github.com/glowhub/salon-scheduler/internal/middleware"
	ucSchedule "github.com/glowhub/salon-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Sem REDIS_URL o cache fica desligado (receiver nil é um no-op).
	var availabilityCache *cache.Availability
	if cfg.RedisURL != "" {
		c, err := cache.NewAvailability(cfg.RedisURL)
		if err != nil {
			logger.L().Warn("redis indisponível, cache de disponibilidade desligado",
				zap.Error(err),
			)
		} else {
			availabilityCache = c
		}
	}

	policy := domain.Policy{
		SlotStepMinutes: cfg.SlotStepMinutes,
		MinLeadMinutes:  cfg.MinLeadMinutes,
	}

	// ======================================================
	// 🧠 USE CASES — SCHEDULE
	// ======================================================
	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo, policy)

	createInternalUC := ucSchedule.NewCreateInternalAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	createPublicUC := ucSchedule.NewCreatePublicAppointment(
		scheduleRepo,
		policy,
		auditDispatcher,
	)

	rescheduleUC := ucSchedule.NewRescheduleAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	moveUC := ucSchedule.NewMoveAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelPublicUC := ucSchedule.NewCancelPublicAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	completeUC := ucSchedule.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	blockoutUC := ucSchedule.NewCreateBlockout(
		scheduleRepo,
		auditDispatcher,
	)

	salonAgendaUC := ucSchedule.NewGetSalonAgenda(scheduleRepo)
	monthAgendaUC := ucSchedule.NewGetMonthAgenda(scheduleRepo)
	myAgendaUC := ucSchedule.NewGetProfessionalAgenda(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	tenantHandler := handlers.NewTenantHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createInternalUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		myAgendaUC,
		availabilityUC,
		scheduleRepo,
		availabilityCache,
	)

	agendaHandler := handlers.NewAgendaHandler(
		salonAgendaUC,
		monthAgendaUC,
		moveUC,
		blockoutUC,
		scheduleRepo,
		availabilityCache,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createPublicUC,
		cancelPublicUC,
		scheduleRepo,
		availabilityCache,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (x-api-key)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.APIKeyMiddleware(cfg))
		{
			publicAPI.GET("/:slug/info", publicHandler.Info)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:id", publicHandler.GetAppointment)
			publicAPI.PATCH("/:slug/appointments/:id", publicHandler.PatchAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/tenant", tenantHandler.Get)
			secured.PATCH("/me/tenant", tenantHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)

			secured.GET("/me/business-hours", businessHoursHandler.Get)
			secured.PUT("/me/business-hours", businessHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// AGENDA (quadro/calendário)
			// ------------------------------
			secured.GET("/me/agenda", agendaHandler.Day)
			secured.GET("/me/agenda/month", agendaHandler.Month)
			secured.PATCH("/me/agenda/appointments/:id/move", agendaHandler.Move)
			secured.POST("/me/agenda/blockouts", agendaHandler.CreateBlockout)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
