package schedule

import "github.com/angiescolor/salon-agenda/internal/httperr"

// ===============================
// Estado del turno
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// CanCancel define si un turno puede cancelarse.
// No hay borrado físico: cancelar es la única salida del estado activo.
func CanCancel(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
