package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbertime/internal/config"
	"github.com/BruksfildServices01/barbertime/internal/domain/schedule"
	"github.com/BruksfildServices01/barbertime/internal/models"
	"github.com/BruksfildServices01/barbertime/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	ShopName string `json:"shop_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register cria o barbeiro já utilizável: agenda padrão, quatro serviços
// padrão e período de teste. O barber_id gerado é a chave do link público
// de agendamento.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	trialEnds := time.Now().AddDate(0, 0, h.config.TrialDays)

	barber := models.Barber{
		BarberID:           uuid.NewString(),
		Name:               req.Name,
		ShopName:           req.ShopName,
		Email:              email,
		PasswordHash:       string(hashed),
		Phone:              req.Phone,
		Active:             true,
		SubscriptionStatus: "trial",
		TrialEndsAt:        &trialEnds,
		BreakEnabled:       true,
		BreakStart:         "13:30",
		BreakEnd:           "16:30",
		PriceHaircut:       "35.00",
		PriceBeard:         "25.00",
		PriceComplete:      "50.00",
		PriceShave:         "20.00",
	}

	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	if err := h.seedDefaults(&barber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_seed_defaults"})
		return
	}

	token, err := h.generateToken(&barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barber": gin.H{
			"barber_id": barber.BarberID,
			"name":      barber.Name,
			"shop_name": barber.ShopName,
			"email":     barber.Email,
			"phone":     barber.Phone,
		},
		"booking_link": "/agendar/" + barber.BarberID,
		"token":        token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var barber models.Barber
	if err := h.db.
		Where("email = ?", email).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&barber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": gin.H{
			"barber_id": barber.BarberID,
			"name":      barber.Name,
			"shop_name": barber.ShopName,
			"email":     barber.Email,
			"phone":     barber.Phone,
		},
		"booking_link": "/agendar/" + barber.BarberID,
		"token":        token,
	})
}

// --------- Seeds ---------

func (h *AuthHandler) seedDefaults(barber *models.Barber) error {
	ws := schedule.Default()
	days := make([]models.WorkingDay, 0, 7)
	for wd, day := range ws.Days {
		days = append(days, models.WorkingDay{
			BarberID:  barber.BarberID,
			Weekday:   wd,
			Open:      day.Open,
			StartTime: day.Start,
			EndTime:   day.End,
		})
	}
	if err := h.db.Create(&days).Error; err != nil {
		return err
	}

	services := []models.Service{
		{BarberID: barber.BarberID, Name: "Corte", Price: barber.PriceHaircut, SortOrder: 1, Active: true},
		{BarberID: barber.BarberID, Name: "Barba", Price: barber.PriceBeard, SortOrder: 2, Active: true},
		{BarberID: barber.BarberID, Name: "Completo", Price: barber.PriceComplete, SortOrder: 3, Active: true},
		{BarberID: barber.BarberID, Name: "Barbear", Price: barber.PriceShave, SortOrder: 4, Active: true},
	}
	for i := range services {
		services[i].DurationMin = "30"
	}

	return h.db.Create(&services).Error
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(barber *models.Barber) (string, error) {
	claims := jwt.MapClaims{
		"sub": barber.BarberID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
