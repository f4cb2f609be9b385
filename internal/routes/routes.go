package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/angiescolor/salon-agenda/internal/audit"
	"github.com/angiescolor/salon-agenda/internal/config"
	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/handlers"
	infraRepo "github.com/angiescolor/salon-agenda/internal/infra/repository"
	"github.com/angiescolor/salon-agenda/internal/middleware"
	ucAppointment "github.com/angiescolor/salon-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	grid := gridConfig(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		agendaRepo,
		grid,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		agendaRepo,
		grid,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		agendaRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		agendaRepo,
	)

	dayAgendaUC := ucAppointment.NewGetDayAgenda(
		agendaRepo,
		grid,
	)

	reminderLinkUC := ucAppointment.NewGetReminderLink(
		agendaRepo,
		cfg.SalonName,
	)

	markReminderSentUC := ucAppointment.NewMarkReminderSent(
		agendaRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		agendaRepo,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		reminderLinkUC,
		markReminderSentUC,
	)

	agendaHandler := handlers.NewAgendaHandler(dayAgendaUC)
	clientHandler := handlers.NewClientHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	specialtyHandler := handlers.NewSpecialtyHandler(db)
	roomHandler := handlers.NewRoomHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILIDAD
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/agenda", agendaHandler.Day)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.GET("/appointments/:id/reminder-link", appointmentHandler.ReminderLink)
		api.PATCH("/appointments/:id/reminder-sent", appointmentHandler.MarkReminderSent)

		// ------------------------------
		// REFERENCE ENTITIES
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)

		api.GET("/staff", staffHandler.List)
		api.POST("/staff", staffHandler.Create)

		api.GET("/specialties", specialtyHandler.List)
		api.POST("/specialties", specialtyHandler.Create)
		api.PATCH("/specialties/:id", specialtyHandler.Update)

		api.GET("/rooms", roomHandler.List)
		api.POST("/rooms", roomHandler.Create)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

// gridConfig valida la ventana de atención al arrancar: una configuración
// rota no puede servir ni un request.
func gridConfig(cfg *config.Config) domain.GridConfig {
	open, err := domain.ParseTimeOfDay(cfg.OpenTime)
	if err != nil {
		log.Fatal().Err(err).Str("open_time", cfg.OpenTime).Msg("invalid OPEN_TIME")
	}

	close, err := domain.ParseTimeOfDay(cfg.CloseTime)
	if err != nil {
		log.Fatal().Err(err).Str("close_time", cfg.CloseTime).Msg("invalid CLOSE_TIME")
	}

	if close <= open || cfg.SlotMinutes <= 0 {
		log.Fatal().
			Str("open_time", cfg.OpenTime).
			Str("close_time", cfg.CloseTime).
			Int("slot_minutes", cfg.SlotMinutes).
			Msg("invalid opening window")
	}

	return domain.GridConfig{
		Open:    open,
		Close:   close,
		StepMin: cfg.SlotMinutes,
	}
}
