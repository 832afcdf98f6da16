package models

import "time"

type Barber struct {
	// ID numérico é legado/uso interno do banco; a chave real é BarberID.
	ID uint `gorm:"primaryKey" json:"-"`

	BarberID string `gorm:"size:36;uniqueIndex;not null" json:"barber_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	ShopName     string `gorm:"size:100" json:"shop_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	// Preços legados por tipo de serviço - fallback quando não existe
	// um Service nomeado correspondente no momento do agendamento.
	PriceHaircut  string `gorm:"size:20;default:'35.00'" json:"price_haircut"`
	PriceBeard    string `gorm:"size:20;default:'25.00'" json:"price_beard"`
	PriceComplete string `gorm:"size:20;default:'50.00'" json:"price_complete"`
	PriceShave    string `gorm:"size:20;default:'20.00'" json:"price_shave"`

	// Pausa diária única, aplicada igualmente a todos os dias abertos.
	BreakEnabled bool   `gorm:"default:true" json:"break_enabled"`
	BreakStart   string `gorm:"size:5;default:'13:30'" json:"break_start"`
	BreakEnd     string `gorm:"size:5;default:'16:30'" json:"break_end"`

	Active bool `gorm:"default:true" json:"active"`

	SubscriptionStatus  string     `gorm:"size:20;default:'trial'" json:"subscription_status"`
	TrialEndsAt         *time.Time `json:"trial_ends_at"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`
	PreapprovalID       string     `gorm:"size:64" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
