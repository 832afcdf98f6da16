package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbertime/internal/audit"
	"github.com/BruksfildServices01/barbertime/internal/cache"
	"github.com/BruksfildServices01/barbertime/internal/config"
	"github.com/BruksfildServices01/barbertime/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbertime/internal/infra/repository"
	"github.com/BruksfildServices01/barbertime/internal/middleware"
	"github.com/BruksfildServices01/barbertime/internal/payments"
	"github.com/BruksfildServices01/barbertime/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barbertime/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbertime/internal/usecase/availability"
	"github.com/BruksfildServices01/barbertime/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	provider payments.Provider,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	barberStore := infraRepo.NewBarberGormStore(db)

	availabilityCache := cache.NewAvailabilityCache(rdb, cfg.AvailabilityTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStorage := storage.NewAvatarStorage(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	resolveUC := availability.NewResolve(barberStore, appointmentRepo, availabilityCache)

	bookUC := booking.NewBook(
		barberStore,
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
	)

	cancelUC := ucAppointment.NewCancel(appointmentRepo, availabilityCache, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, availabilityCache, auditDispatcher)
	confirmUC := ucAppointment.NewConfirm(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListByDate(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(db, resolveUC, bookUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		deleteUC,
		confirmUC,
		listUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(barberStore, availabilityCache, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(barberStore, avatarStorage, auditDispatcher)
	subscriptionHandler := handlers.NewSubscriptionHandler(barberStore, provider)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	if provider == nil {
		log.Println("payments provider not configured; checkout disabled")
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA - link de agendamento
		// ------------------------------
		publicAPI := api.Group("/public/:barberId")
		{
			publicAPI.GET("", publicHandler.GetBarber)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA - painel
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Assinatura fica fora do gate: é por aqui que o barbeiro
			// bloqueado renova.
			secured.GET("/me/subscription", subscriptionHandler.Status)
			secured.POST("/me/subscription/checkout", subscriptionHandler.Checkout)

			gated := secured.Group("/")
			gated.Use(middleware.SubscriptionGate(db))
			{
				gated.GET("/me", barberHandler.GetMe)
				gated.PATCH("/me", barberHandler.Update)
				gated.POST("/me/avatar", barberHandler.UploadAvatar)

				gated.GET("/me/services", serviceHandler.List)
				gated.POST("/me/services", serviceHandler.Create)
				gated.PATCH("/me/services/:id", serviceHandler.Update)
				gated.DELETE("/me/services/:id", serviceHandler.Delete)

				gated.GET("/me/schedule", scheduleHandler.Get)
				gated.PUT("/me/schedule", scheduleHandler.Update)

				// ------------------------------
				// APPOINTMENTS
				// ------------------------------
				gated.POST("/me/appointments", appointmentHandler.Create)
				gated.GET("/me/appointments", appointmentHandler.ListByDate)
				gated.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
				gated.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
				gated.DELETE("/me/appointments/:id", appointmentHandler.Delete)

				gated.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
