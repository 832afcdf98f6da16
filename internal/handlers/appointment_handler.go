package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/dto"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/httpresp"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbertime/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbertime/internal/usecase/booking"
)

type AppointmentHandler struct {
	bookUC    *booking.Book
	cancelUC  *ucAppointment.Cancel
	deleteUC  *ucAppointment.Delete
	confirmUC *ucAppointment.Confirm
	listUC    *ucAppointment.ListByDate
}

func NewAppointmentHandler(
	bookUC *booking.Book,
	cancelUC *ucAppointment.Cancel,
	deleteUC *ucAppointment.Delete,
	confirmUC *ucAppointment.Confirm,
	listUC *ucAppointment.ListByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:    bookUC,
		cancelUC:  cancelUC,
		deleteUC:  deleteUC,
		confirmUC: confirmUC,
		listUC:    listUC,
	}
}

// --------- Requests ---------

type BarberBookingRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service" binding:"required"`
}

// --------- Handlers ---------

// Create é o agendamento feito pelo próprio barbeiro: entra como scheduled
// e pode ser confirmado depois.
func (h *AppointmentHandler) Create(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	var req BarberBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), booking.Input{
		BarberID:        barberID,
		Date:            req.Date,
		Time:            req.Time,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		Service:         req.Service,
		BarberInitiated: true,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "use o formato YYYY-MM-DD")
		return
	}

	apps, err := h.listUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Unavailable(c, "availability_unavailable",
			"não foi possível listar os agendamentos, tente novamente")
		return
	}

	out := make([]dto.AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			Service:     ap.Service,
			Price:       ap.Price,
		})
	}

	httpresp.List(c, out)
}

// Cancel é o soft-cancel: mantém o registro para histórico.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, h.cancelUC.Execute)
}

// Delete é o "liberar este horário": remove de vez o registro.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	h.lifecycle(c, h.deleteUC.Execute)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.lifecycle(c, h.confirmUC.Execute)
}

// lifecycle trata as três transições do mesmo jeito: idempotentes, ok=false
// quando não havia nada a fazer.
func (h *AppointmentHandler) lifecycle(
	c *gin.Context,
	exec func(ctx context.Context, barberID string, id uint) (bool, error),
) {
	barberID := c.GetString(middleware.ContextBarberID)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	ok, err := exec(c.Request.Context(), barberID, uint(id64))
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrBookingFailed) {
			httperr.Unavailable(c, "booking_failed", "tente novamente")
			return
		}
		httperr.Internal(c, "internal_error", "erro interno")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": ok})
}
