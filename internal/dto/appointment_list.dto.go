package dto

import "time"

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	End         string `json:"end"`
	DurationMin int    `json:"duration_min"`
	Status      string `json:"status"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	SpecialtyName  string `json:"specialty_name"`
	SpecialtyColor string `json:"specialty_color"`

	StaffName string `json:"staff_name"`
	RoomName  string `json:"room_name"`

	DepositPaid   bool `json:"deposit_paid"`
	DepositAmount int  `json:"deposit_amount"`

	ReminderSent   bool       `json:"reminder_sent"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}
