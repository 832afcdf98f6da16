package payments

import (
	"context"
	"fmt"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type MercadoPago struct {
	preferences  preference.Client
	preapprovals preapproval.Client
	backURL      string
}

func NewMercadoPago(accessToken, backURL string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences:  preference.NewClient(cfg),
		preapprovals: preapproval.NewClient(cfg),
		backURL:      backURL,
	}, nil
}

func (mp *MercadoPago) CreateCheckout(
	ctx context.Context,
	barberID string,
	email string,
	price float64,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     "Assinatura BarberTime",
				Quantity:  1,
				UnitPrice: price,
			},
		},
		ExternalReference: barberID,
		BackURLs: &preference.BackURLsRequest{
			Success: mp.backURL,
			Failure: mp.backURL,
			Pending: mp.backURL,
		},
	}

	resp, err := mp.preferences.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resp.InitPoint, nil
}

func (mp *MercadoPago) VerifySubscription(
	ctx context.Context,
	preapprovalID string,
) (SubscriptionState, error) {

	resp, err := mp.preapprovals.Get(ctx, preapprovalID)
	if err != nil {
		return SubscriptionState{}, fmt.Errorf("get preapproval: %w", err)
	}

	state := SubscriptionState{
		Active: strings.EqualFold(resp.Status, "authorized"),
	}

	// Vencimento ausente conta como já vencido, nunca como válido para
	// sempre.
	if !resp.NextPaymentDate.IsZero() {
		t := resp.NextPaymentDate
		state.ExpiresAt = &t
	}

	return state, nil
}

// Compile-time check
var _ Provider = (*MercadoPago)(nil)
