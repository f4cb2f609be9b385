package models

import "time"

type Specialty struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`

	// Color con el que se pinta en la grilla.
	ColorHex string `gorm:"size:12;default:'#60a5fa'" json:"color_hex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
