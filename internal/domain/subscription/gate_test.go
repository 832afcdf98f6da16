package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbertime/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ts(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		barber models.Barber
		want   Access
	}{
		{
			name: "expired trial without subscription",
			barber: models.Barber{
				SubscriptionStatus: "trial",
				TrialEndsAt:        ts(-24 * time.Hour),
			},
			want: Access{},
		},
		{
			name: "active trial",
			barber: models.Barber{
				SubscriptionStatus: "trial",
				TrialEndsAt:        ts(5 * 24 * time.Hour),
			},
			want: Access{HasAccess: true, IsTrialActive: true},
		},
		{
			name: "active subscription expiring in two days warns renewal",
			barber: models.Barber{
				SubscriptionStatus:  "active",
				SubscriptionExpires: ts(2 * 24 * time.Hour),
			},
			want: Access{
				HasAccess:            true,
				IsSubscriptionActive: true,
				NeedsRenewalSoon:     true,
			},
		},
		{
			name: "active subscription far from expiry",
			barber: models.Barber{
				SubscriptionStatus:  "active",
				SubscriptionExpires: ts(30 * 24 * time.Hour),
			},
			want: Access{HasAccess: true, IsSubscriptionActive: true},
		},
		{
			name: "active status with lapsed expiry",
			barber: models.Barber{
				SubscriptionStatus:  "active",
				SubscriptionExpires: ts(-time.Hour),
			},
			want: Access{},
		},
		{
			// Campos ausentes contam como vencidos, nunca como válidos.
			name:   "missing timestamps fail closed",
			barber: models.Barber{SubscriptionStatus: "active"},
			want:   Access{},
		},
		{
			name: "expired status ignores future expiry timestamp",
			barber: models.Barber{
				SubscriptionStatus:  "expired",
				SubscriptionExpires: ts(10 * 24 * time.Hour),
			},
			want: Access{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(&tt.barber, now))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusTrial, StatusActive},
		{StatusTrial, StatusExpired},
		{StatusActive, StatusExpired},
		{StatusExpired, StatusActive},
	}

	states := []Status{StatusTrial, StatusActive, StatusExpired}
	for _, from := range states {
		for _, to := range states {
			want := false
			for _, a := range allowed {
				if a[0] == from && a[1] == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "%s → %s", from, to)
		}
	}
}
