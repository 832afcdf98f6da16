package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	domain "github.com/BruksfildServices01/barbertime/internal/domain/appointment"
	"github.com/BruksfildServices01/barbertime/internal/httperr"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
	"github.com/BruksfildServices01/barbertime/internal/storage"
)

type BarberHandler struct {
	store   domain.BarberStore
	avatars *storage.AvatarStorage
	audit   *audit.Dispatcher
}

func NewBarberHandler(
	store domain.BarberStore,
	avatars *storage.AvatarStorage,
	audit *audit.Dispatcher,
) *BarberHandler {
	return &BarberHandler{store: store, avatars: avatars, audit: audit}
}

// --------- Requests ---------

// Todos os campos são opcionais: merge parcial, ausente fica como está.
type UpdateBarberRequest struct {
	Name     *string `json:"name,omitempty"`
	ShopName *string `json:"shop_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`

	PriceHaircut  *string `json:"price_haircut,omitempty"`
	PriceBeard    *string `json:"price_beard,omitempty"`
	PriceComplete *string `json:"price_complete,omitempty"`
	PriceShave    *string `json:"price_shave,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) GetMe(c *gin.Context) {
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

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.ShopName != nil {
		patch["shop_name"] = *req.ShopName
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.PriceHaircut != nil {
		patch["price_haircut"] = *req.PriceHaircut
	}
	if req.PriceBeard != nil {
		patch["price_beard"] = *req.PriceBeard
	}
	if req.PriceComplete != nil {
		patch["price_complete"] = *req.PriceComplete
	}
	if req.PriceShave != nil {
		patch["price_shave"] = *req.PriceShave
	}

	barber, err := h.store.UpdateByBarberID(c.Request.Context(), barberID, patch)
	if err != nil {
		httperr.Internal(c, "failed_to_update_barber", "não foi possível salvar")
		return
	}
	if barber == nil {
		httperr.NotFound(c, "barber_not_found", "barbeiro não encontrado")
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			BarberID: barberID,
			Action:   "settings_updated",
			Entity:   "barber",
		})
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	barberID := c.GetString(middleware.ContextBarberID)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "envie o arquivo no campo 'avatar'")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), barberID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "não foi possível enviar a imagem")
		return
	}

	if _, err := h.store.UpdateByBarberID(
		c.Request.Context(),
		barberID,
		map[string]any{"avatar_url": url},
	); err != nil {
		httperr.Internal(c, "failed_to_update_barber", "não foi possível salvar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
