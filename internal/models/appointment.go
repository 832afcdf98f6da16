package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID string `gorm:"size:36;index:idx_appointments_barber_date;not null" json:"barber_id"`

	Date string `gorm:"size:10;index:idx_appointments_barber_date;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`                                     // HH:MM

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	// Snapshot no momento da reserva - mudar o preço de um Service depois
	// não altera agendamentos passados.
	Service string `gorm:"size:100;not null" json:"service"`
	Price   string `gorm:"size:20" json:"price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
