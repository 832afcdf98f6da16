package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/subscription"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
	"github.com/BruksfildServices01/barbertime/internal/payments"
)

const monthlyPrice = 49.90

type SubscriptionHandler struct {
	store    domain.BarberStore
	provider payments.Provider
}

func NewSubscriptionHandler(
	store domain.BarberStore,
	provider payments.Provider,
) *SubscriptionHandler {
	return &SubscriptionHandler{store: store, provider: provider}
}

// Status devolve o resultado do gate: quem consome é o painel, para decidir
// entre dashboard, aviso de renovação ou tela de assinatura.
func (h *SubscriptionHandler) Status(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	barber, err := h.store.GetByBarberID(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "internal_error", "erro interno")
		return
	}
	if barber == nil {
		httperr.NotFound(c, "barber_not_found", "barbeiro não encontrado")
		return
	}

	acc := subscription.Evaluate(barber, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"status":               barber.SubscriptionStatus,
		"trial_ends_at":        barber.TrialEndsAt,
		"subscription_expires": barber.SubscriptionExpires,
		"access":               acc,
	})
}

// Checkout cria a ordem no provedor e devolve o link de pagamento. A
// confirmação em si chega pelo monitor de reconciliação, não por aqui.
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	if h.provider == nil {
		httperr.Unavailable(c, "checkout_unavailable", "pagamento indisponível no momento")
		return
	}

	barberID := c.GetString(middleware.ContextBarberID)

	barber, err := h.store.GetByBarberID(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "internal_error", "erro interno")
		return
	}
	if barber == nil {
		httperr.NotFound(c, "barber_not_found", "barbeiro não encontrado")
		return
	}

	link, err := h.provider.CreateCheckout(
		c.Request.Context(),
		barber.BarberID,
		barber.Email,
		monthlyPrice,
	)
	if err != nil {
		httperr.Unavailable(c, "checkout_failed",
			"não foi possível iniciar o pagamento, tente novamente")
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": link})
}
