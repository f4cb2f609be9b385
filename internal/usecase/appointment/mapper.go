package appointment

import (
	domain "github.com/angiescolor/salon-agenda/internal/domain/schedule"
	"github.com/angiescolor/salon-agenda/internal/dto"
	"github.com/angiescolor/salon-agenda/internal/models"
)

func toListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	start := domain.TimeOfDay(ap.StartMin)

	out := dto.AppointmentListDTO{
		ID:             ap.ID,
		Date:           ap.Date.Format("2006-01-02"),
		Start:          start.String(),
		End:            start.Add(ap.DurationMin).String(),
		DurationMin:    ap.DurationMin,
		Status:         ap.Status,
		ClientName:     ap.Client.Name,
		ClientPhone:    ap.Client.Phone,
		DepositPaid:    ap.DepositPaid,
		DepositAmount:  ap.DepositAmount,
		ReminderSent:   ap.ReminderSent,
		ReminderSentAt: ap.ReminderSentAt,
	}

	if ap.Specialty != nil {
		out.SpecialtyName = ap.Specialty.Name
		out.SpecialtyColor = ap.Specialty.ColorHex
	}
	if ap.Staff != nil {
		out.StaffName = ap.Staff.Name
	}
	if ap.Room != nil {
		out.RoomName = ap.Room.Name
	}

	return out
}

func toDayAppointment(ap *models.Appointment) domain.DayAppointment {
	out := domain.DayAppointment{
		ID:            ap.ID,
		Start:         domain.TimeOfDay(ap.StartMin),
		DurationMin:   ap.DurationMin,
		Cancelled:     ap.Status == string(domain.StatusCancelled),
		ClientName:    ap.Client.Name,
		ClientPhone:   ap.Client.Phone,
		DepositPaid:   ap.DepositPaid,
		DepositAmount: ap.DepositAmount,
		Notes:         ap.Notes,
		ReminderSent:  ap.ReminderSent,
	}

	if ap.Specialty != nil {
		out.SpecialtyName = ap.Specialty.Name
		out.SpecialtyColor = ap.Specialty.ColorHex
	}
	if ap.Staff != nil {
		out.StaffName = ap.Staff.Name
	}
	if ap.Room != nil {
		out.RoomName = ap.Room.Name
	}

	return out
}
