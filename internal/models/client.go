package models

import "time"

// Cliente del salón, sin login. Se identifica por teléfono.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:180;not null" json:"name"`
	Phone string `gorm:"size:40" json:"phone"`
	Email string `gorm:"size:180" json:"email"`
	Notes string `gorm:"type:text" json:"notes"`

	// Última visita: se actualiza cuando se le agenda un turno.
	LastVisit *time.Time `gorm:"type:date" json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
