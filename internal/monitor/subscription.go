package monitor

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbertime/internal/domain/subscription"
	"github.com/BruksfildServices01/barbertime/internal/models"
	"github.com/BruksfildServices01/barbertime/internal/payments"
)

// SubscriptionMonitor reconcilia periodicamente o estado das assinaturas
// com o provedor de pagamento: expira vencidos (active→expired), reativa
// pagamento confirmado (expired→active) e avisa renovações próximas.
type SubscriptionMonitor struct {
	db       *gorm.DB
	provider payments.Provider
	interval time.Duration
}

func NewSubscriptionMonitor(
	db *gorm.DB,
	provider payments.Provider,
	interval time.Duration,
) *SubscriptionMonitor {
	return &SubscriptionMonitor{
		db:       db,
		provider: provider,
		interval: interval,
	}
}

// Run bloqueia até o ctx ser cancelado; roda um ciclo na partida e depois
// a cada intervalo.
func (m *SubscriptionMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reconcile(ctx)
		}
	}
}

func (m *SubscriptionMonitor) reconcile(ctx context.Context) {
	now := time.Now()

	var barbers []models.Barber
	if err := m.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&barbers).Error; err != nil {
		log.Printf("subscription monitor: list barbers: %v", err)
		return
	}

	for i := range barbers {
		m.reconcileBarber(ctx, &barbers[i], now)
	}
}

func (m *SubscriptionMonitor) reconcileBarber(
	ctx context.Context,
	b *models.Barber,
	now time.Time,
) {
	status := subscription.Status(b.SubscriptionStatus)
	acc := subscription.Evaluate(b, now)

	switch {
	// trial/active vencidos viram expired.
	case status != subscription.StatusExpired && !acc.HasAccess:
		m.transition(ctx, b, status, subscription.StatusExpired)

	// Expirado com preapproval conhecida: o pagamento pode ter sido
	// confirmado desde o último ciclo.
	case status == subscription.StatusExpired && b.PreapprovalID != "":
		state, err := m.provider.VerifySubscription(ctx, b.PreapprovalID)
		if err != nil {
			log.Printf("subscription monitor: verify %s: %v", b.BarberID, err)
			return
		}
		if state.Active && state.ExpiresAt != nil && state.ExpiresAt.After(now) {
			if m.transition(ctx, b, status, subscription.StatusActive) {
				m.db.WithContext(ctx).
					Model(&models.Barber{}).
					Where("barber_id = ?", b.BarberID).
					Update("subscription_expires", state.ExpiresAt)
			}
		}

	case acc.NeedsRenewalSoon:
		// O texto e o envio do aviso são de um job externo; aqui só fica o
		// registro de que a renovação está próxima.
		log.Printf("subscription monitor: renewal due soon for %s (expires %s)",
			b.BarberID, b.SubscriptionExpires.Format("2006-01-02"))
	}
}

func (m *SubscriptionMonitor) transition(
	ctx context.Context,
	b *models.Barber,
	from, to subscription.Status,
) bool {
	if !subscription.CanTransition(from, to) {
		log.Printf("subscription monitor: illegal transition %s → %s for %s", from, to, b.BarberID)
		return false
	}

	if err := m.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("barber_id = ? AND subscription_status = ?", b.BarberID, string(from)).
		Update("subscription_status", string(to)).Error; err != nil {
		log.Printf("subscription monitor: update %s: %v", b.BarberID, err)
		return false
	}

	log.Printf("subscription monitor: %s %s → %s", b.BarberID, from, to)
	return true
}
