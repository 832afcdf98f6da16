package models

import "time"

type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID string `gorm:"size:36;index;not null" json:"barber_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Price       string `gorm:"size:20;not null" json:"price"`
	DurationMin string `gorm:"size:10;default:'30'" json:"duration_min"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
