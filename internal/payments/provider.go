package payments

import (
	"context"
	"time"
)

// Estado relevante de uma assinatura no provedor de pagamento. Só o efeito
// sobre o status importa aqui - cobrança em si fica do lado de fora.
type SubscriptionState struct {
	Active    bool
	ExpiresAt *time.Time
}

type Provider interface {
	// CreateCheckout cria a ordem de pagamento da assinatura e devolve o
	// link de checkout para o barbeiro.
	CreateCheckout(
		ctx context.Context,
		barberID string,
		email string,
		price float64,
	) (string, error)

	// VerifySubscription consulta o estado atual da assinatura.
	VerifySubscription(
		ctx context.Context,
		preapprovalID string,
	) (SubscriptionState, error)
}
