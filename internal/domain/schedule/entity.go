package schedule

import (
	"time"

	"github.com/angiescolor/salon-agenda/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func MarkReminderSent(ap *models.Appointment, now time.Time) {
	ap.ReminderSent = true
	ap.ReminderSentAt = &now
}

// BookingOf traduce el modelo persistido a la vista del validador.
func BookingOf(ap *models.Appointment) Booking {
	return Booking{
		ID:          ap.ID,
		Start:       TimeOfDay(ap.StartMin),
		DurationMin: ap.DurationMin,
		Scope: Scope{
			StaffID: ap.StaffID,
			RoomID:  ap.RoomID,
		},
		Cancelled: ap.Status == string(StatusCancelled),
	}
}
