package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/subscription"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/httpresp"
	"github.com/BruksfildServices01/barbertime/internal/models"
	"github.com/BruksfildServices01/barbertime/internal/usecase/availability"
	"github.com/BruksfildServices01/barbertime/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER - link público de agendamento
////////////////////////////////////////////////////////

type PublicHandler struct {
	db        *gorm.DB
	resolveUC *availability.Resolve
	bookUC    *booking.Book
}

func NewPublicHandler(
	db *gorm.DB,
	resolveUC *availability.Resolve,
	bookUC *booking.Book,
) *PublicHandler {
	return &PublicHandler{
		db:        db,
		resolveUC: resolveUC,
		bookUC:    bookUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookingRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service" binding:"required"`
}

////////////////////////////////////////////////////////
// Handlers
////////////////////////////////////////////////////////

// GetBarber devolve os dados exibidos na página de agendamento.
func (h *PublicHandler) GetBarber(c *gin.Context) {
	barber, ok := h.activeBarber(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id":  barber.BarberID,
		"name":       barber.Name,
		"shop_name":  barber.ShopName,
		"avatar_url": barber.AvatarURL,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	barber, ok := h.activeBarber(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barber_id = ? AND active = ?", barber.BarberID, true).
		Order("sort_order ASC, id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "não foi possível listar os serviços")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	barber, ok := h.activeBarber(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "use o formato YYYY-MM-DD")
		return
	}

	slots, err := h.resolveUC.Execute(c.Request.Context(), barber.BarberID, date)
	if err != nil {
		// Falha transitória não é "sem horários": o cliente pode repetir.
		httperr.Unavailable(c, "availability_unavailable",
			"não foi possível consultar os horários, tente novamente")
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	barber, ok := h.activeBarber(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), booking.Input{
		BarberID:    barber.BarberID,
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Service:     req.Service,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

// activeBarber resolve o :barberId do link e recusa link de barbeiro
// bloqueado (trial e assinatura vencidos).
func (h *PublicHandler) activeBarber(c *gin.Context) (*models.Barber, bool) {
	barberID := c.Param("barberId")

	var barber models.Barber
	if err := h.db.
		Where("barber_id = ? AND active = ?", barberID, true).
		First(&barber).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "link de agendamento inválido")
		} else {
			httperr.Internal(c, "internal_error", "erro interno")
		}
		return nil, false
	}

	acc := subscription.Evaluate(&barber, time.Now())
	if !acc.HasAccess {
		httperr.NotFound(c, "barber_unavailable", "este barbeiro não está recebendo agendamentos")
		return nil, false
	}

	return &barber, true
}

func writeBookingError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "slot_unavailable":
			httperr.Conflict(c, code, "este horário acabou de ser reservado, escolha outro")
		case "day_closed":
			httperr.Conflict(c, code, "a barbearia não abre neste dia")
		case "barber_not_found", "service_not_found":
			httperr.NotFound(c, code, code)
		default:
			httperr.BadRequest(c, code, code)
		}
		return
	}

	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrBookingFailed) {
		httperr.Unavailable(c, "booking_failed",
			"não foi possível concluir a reserva, tente novamente")
		return
	}

	httperr.Internal(c, "internal_error", "erro interno")
}
