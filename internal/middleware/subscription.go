package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbertime/internal/domain/subscription"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/models"
)

// SubscriptionGate bloqueia o painel quando trial e assinatura venceram.
// Roda depois do AuthMiddleware.
func SubscriptionGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		barberIDVal, ok := c.Get(ContextBarberID)
		if !ok {
			httperr.Unauthorized(c, "missing_identity", "token sem identidade")
			c.Abort()
			return
		}
		barberID := barberIDVal.(string)

		var barber models.Barber
		if err := db.
			Where("barber_id = ?", barberID).
			First(&barber).Error; err != nil {
			httperr.Unauthorized(c, "barber_not_found", "barbeiro não encontrado")
			c.Abort()
			return
		}

		acc := subscription.Evaluate(&barber, time.Now())
		if !acc.HasAccess {
			httperr.PaymentRequired(c, "subscription_required",
				"período de teste encerrado; assine para continuar")
			c.Abort()
			return
		}

		c.Next()
	}
}
