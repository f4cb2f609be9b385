package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/httpresp"
	ucAppointment "github.com/angiescolor/salon-agenda/internal/usecase/appointment"
)

type AgendaHandler struct {
	dayAgendaUC *ucAppointment.GetDayAgenda
}

func NewAgendaHandler(dayAgendaUC *ucAppointment.GetDayAgenda) *AgendaHandler {
	return &AgendaHandler{dayAgendaUC: dayAgendaUC}
}

// Day devuelve la grilla del día con cada franja libre, ocupada o
// bloqueada, más la lista plana de turnos.
func (h *AgendaHandler) Day(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	staffID := parseOptionalUintQuery(c, "staff_id")
	roomID := parseOptionalUintQuery(c, "room_id")

	agenda, err := h.dayAgendaUC.Execute(c.Request.Context(), dateStr, staffID, roomID)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, agenda)
}
