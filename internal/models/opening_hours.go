package models

import "time"

// OpeningHours guarda o expediente semanal de um recurso como documento JSON:
// {"monday": {"start": "09:00", "end": "18:00"}, "tuesday": null, ...}
//
// ArtistID nulo = horário do salão; preenchido = horário próprio do profissional.
type OpeningHours struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	SalonID  uint  `gorm:"index" json:"salon_id"`
	ArtistID *uint `gorm:"index" json:"artist_id"`

	Hours string `gorm:"type:jsonb" json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
