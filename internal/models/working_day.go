package models

import "time"

// Um registro por dia da semana (0 = domingo ... 6 = sábado).
// A pausa diária fica no Barber, não aqui - ela vale para todos os dias abertos.
type WorkingDay struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID string `gorm:"size:36;index:idx_working_days_barber_weekday,unique" json:"barber_id"`

	Weekday   int    `gorm:"index:idx_working_days_barber_weekday,unique" json:"weekday"`
	Open      bool   `json:"open"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
