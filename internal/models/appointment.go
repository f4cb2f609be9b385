package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Fecha del turno más inicio y duración en minutos. El inicio es
	// minutos desde medianoche; la agenda no maneja zonas horarias.
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	StartMin    int       `gorm:"not null" json:"start_min"`
	DurationMin int       `gorm:"default:30" json:"duration_min"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	SpecialtyID *uint      `json:"specialty_id"`
	Specialty   *Specialty `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialty,omitempty"`

	StaffID *uint  `json:"staff_id"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	RoomID *uint `json:"room_id"`
	Room   *Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"room,omitempty"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	DepositPaid   bool `gorm:"default:false" json:"deposit_paid"`
	DepositAmount int  `gorm:"default:0" json:"deposit_amount"`

	Notes string `gorm:"type:text" json:"notes"`

	ReminderSent   bool       `gorm:"default:false" json:"reminder_sent"`
	ReminderSentAt *time.Time `json:"reminder_sent_at"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
