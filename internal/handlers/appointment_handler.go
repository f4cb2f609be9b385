package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/httpresp"
	ucAppointment "github.com/angiescolor/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo domain.Repository

	createUC       *ucAppointment.CreateAppointment
	rescheduleUC   *ucAppointment.RescheduleAppointment
	cancelUC       *ucAppointment.CancelAppointment
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	reminderLinkUC *ucAppointment.GetReminderLink
	markReminderUC *ucAppointment.MarkReminderSent
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	reminderLinkUC *ucAppointment.GetReminderLink,
	markReminderUC *ucAppointment.MarkReminderSent,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:           repo,
		createUC:       createUC,
		rescheduleUC:   rescheduleUC,
		cancelUC:       cancelUC,
		listByDateUC:   listByDateUC,
		reminderLinkUC: reminderLinkUC,
		markReminderUC: markReminderUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	DurationMin int `json:"duration_min"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	SpecialtyID *uint `json:"specialty_id"`
	StaffID     *uint `json:"staff_id"`
	RoomID      *uint `json:"room_id"`

	DepositPaid   bool   `json:"deposit_paid"`
	DepositAmount int    `json:"deposit_amount"`
	Notes         string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	DurationMin int `json:"duration_min"`

	SpecialtyID *uint `json:"specialty_id"`
	StaffID     *uint `json:"staff_id"`
	RoomID      *uint `json:"room_id"`

	DepositPaid   bool   `json:"deposit_paid"`
	DepositAmount int    `json:"deposit_amount"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:          req.Date,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   req.ClientEmail,
		SpecialtyID:   req.SpecialtyID,
		StaffID:       req.StaffID,
		RoomID:        req.RoomID,
		DepositPaid:   req.DepositPaid,
		DepositAmount: req.DepositAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	staffID := parseOptionalUintQuery(c, "staff_id")

	list, err := h.listByDateUC.Execute(c.Request.Context(), dateStr, staffID)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// RESCHEDULE / CANCEL
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		ID:            id,
		Date:          req.Date,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
		SpecialtyID:   req.SpecialtyID,
		StaffID:       req.StaffID,
		RoomID:        req.RoomID,
		DepositPaid:   req.DepositPaid,
		DepositAmount: req.DepositAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// REMINDER (WhatsApp)
// ======================================================

func (h *AppointmentHandler) ReminderLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	out, err := h.reminderLinkUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) MarkReminderSent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.markReminderUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
