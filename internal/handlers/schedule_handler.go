package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
)

type BarberInvalidator interface {
	InvalidateBarber(ctx context.Context, barberID string)
}

type ScheduleHandler struct {
	store domain.BarberStore
	cache BarberInvalidator
	audit *audit.Dispatcher
}

func NewScheduleHandler(
	store domain.BarberStore,
	cache BarberInvalidator,
	audit *audit.Dispatcher,
) *ScheduleHandler {
	return &ScheduleHandler{store: store, cache: cache, audit: audit}
}

// --------- Requests ---------

type WorkingDayConfig struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Open    bool   `json:"open"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ScheduleUpdateRequest struct {
	Days         []WorkingDayConfig `json:"days" binding:"required"`
	BreakEnabled bool               `json:"break_enabled"`
	BreakStart   string             `json:"break_start"`
	BreakEnd     string             `json:"break_end"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	ws, err := h.store.ScheduleFor(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "não foi possível carregar a agenda")
		return
	}

	c.JSON(http.StatusOK, ws)
}

// Update substitui a agenda semanal inteira. A agenda só muda pelo próprio
// barbeiro e só por substituição; toda disponibilidade em cache fica velha.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var ws schedule.WorkingSchedule
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			continue
		}
		ws.Days[d.Weekday] = schedule.Day{
			Open:  d.Open,
			Start: d.Start,
			End:   d.End,
		}
	}
	ws.Break = schedule.Break{
		Enabled: req.BreakEnabled,
		Start:   req.BreakStart,
		End:     req.BreakEnd,
	}

	if err := ws.Validate(); err != nil {
		var schedErr schedule.ScheduleError
		if errors.As(err, &schedErr) {
			httperr.BadRequest(c, "invalid_schedule", schedErr.Reason)
			return
		}
		httperr.BadRequest(c, "invalid_schedule", err.Error())
		return
	}

	if err := h.store.ReplaceSchedule(c.Request.Context(), barberID, ws); err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "não foi possível salvar a agenda")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateBarber(c.Request.Context(), barberID)
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			BarberID: barberID,
			Action:   "schedule_updated",
			Entity:   "schedule",
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
