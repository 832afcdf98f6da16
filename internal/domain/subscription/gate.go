package subscription

import (
	"time"

	"github.com/BruksfildServices01/barbertime/internal/models"
)

// ===============================
// Subscription Status
// ===============================

type Status string

const (
	StatusTrial   Status = "trial"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Janela de aviso antes do vencimento da assinatura.
const RenewalWarning = 3 * 24 * time.Hour

// CanTransition define a máquina de estados da assinatura. O job de
// reconciliação dirige active→expired e expired→active (pagamento
// confirmado); nenhuma outra transição é permitida.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusTrial:
		return to == StatusActive || to == StatusExpired
	case StatusActive:
		return to == StatusExpired
	case StatusExpired:
		return to == StatusActive
	}
	return false
}

// ===============================
// Access evaluation
// ===============================

type Access struct {
	HasAccess            bool `json:"has_access"`
	IsTrialActive        bool `json:"is_trial_active"`
	IsSubscriptionActive bool `json:"is_subscription_active"`
	NeedsRenewalSoon     bool `json:"needs_renewal_soon"`
}

// Evaluate calcula o direito de acesso do barbeiro. Timestamps ausentes
// contam como já vencidos - nunca como válidos para sempre.
func Evaluate(b *models.Barber, now time.Time) Access {
	var acc Access

	if b.TrialEndsAt != nil && !now.After(*b.TrialEndsAt) {
		acc.IsTrialActive = true
	}

	if Status(b.SubscriptionStatus) == StatusActive &&
		b.SubscriptionExpires != nil &&
		!now.After(*b.SubscriptionExpires) {
		acc.IsSubscriptionActive = true
	}

	acc.HasAccess = acc.IsTrialActive || acc.IsSubscriptionActive

	if acc.IsSubscriptionActive &&
		b.SubscriptionExpires.Sub(now) <= RenewalWarning {
		acc.NeedsRenewalSoon = true
	}

	return acc
}
