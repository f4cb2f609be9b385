package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/angiescolor/salon-agenda/internal/httperr"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func parseOptionalUintQuery(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

// writeBusiness traduce errores de negocio de los casos de uso al envelope
// HTTP. Cualquier otro error es falla de infraestructura.
func writeBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	switch code {
	case "time_conflict":
		httperr.Conflict(c, code, "El horario ya está ocupado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Turno no encontrado.")
	case "client_not_found":
		httperr.NotFound(c, code, "Cliente no encontrado.")
	case "staff_not_found":
		httperr.NotFound(c, code, "Profesional no encontrado.")
	case "specialty_not_found":
		httperr.NotFound(c, code, "Especialidad no encontrada.")
	case "room_not_found":
		httperr.NotFound(c, code, "Sala no encontrada.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Fecha u hora inválida.")
	case "invalid_duration":
		httperr.BadRequest(c, code, "Duración inválida.")
	case "outside_opening_hours":
		httperr.BadRequest(c, code, "Fuera del horario de atención.")
	case "invalid_state":
		httperr.BadRequest(c, code, "El turno no admite esa operación.")
	case "missing_client":
		httperr.BadRequest(c, code, "Falta el cliente del turno.")
	case "no_reminder_available":
		httperr.BadRequest(c, code, "El cliente no tiene un teléfono utilizable.")
	default:
		httperr.BadRequest(c, code, "Operación rechazada.")
	}
}
