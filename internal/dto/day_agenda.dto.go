package dto

import "github.com/angiescolor/salon-agenda/internal/domain/schedule"

type DayAgendaDTO struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	DateLabel string `json:"date_label"`

	Grid         []schedule.Slot      `json:"grid"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
