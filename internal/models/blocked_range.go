package models

import "time"

// BlockedRange é um intervalo fechado para agendamento.
// ArtistID nulo = bloqueio do salão inteiro (vale para todos os profissionais).
type BlockedRange struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	SalonID  uint  `gorm:"index" json:"salon_id"`
	ArtistID *uint `gorm:"index" json:"artist_id"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason *string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
