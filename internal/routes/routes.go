package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	"github.com/lushlooksbeauty/studio-api/internal/config"
	"github.com/lushlooksbeauty/studio-api/internal/handlers"
	"github.com/lushlooksbeauty/studio-api/internal/idempotency"
	infraRepo "github.com/lushlooksbeauty/studio-api/internal/infra/repository"
	"github.com/lushlooksbeauty/studio-api/internal/mailer"
	"github.com/lushlooksbeauty/studio-api/internal/middleware"
	"github.com/lushlooksbeauty/studio-api/internal/payments"
	"github.com/lushlooksbeauty/studio-api/internal/storage"
	ucBooking "github.com/lushlooksbeauty/studio-api/internal/usecase/booking"
)

type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      zerolog.Logger
	Verifier payments.Verifier
	Guard    idempotency.Guard
	Uploader *storage.Uploader
	Mailer   mailer.Mailer
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	calendarUC := ucBooking.NewGetCalendar(bookingRepo)

	admitUC := ucBooking.NewAdmitBooking(
		bookingRepo,
		deps.Verifier,
		deps.Guard,
		auditDispatcher,
		deps.Log,
		nil,
	)

	cancelUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config)

	publicHandler := handlers.NewPublicHandler(
		deps.DB,
		availabilityUC,
		calendarUC,
		admitUC,
		bookingRepo,
	)

	photosHandler := handlers.NewPhotosHandler(deps.Uploader)
	newsletterHandler := handlers.NewNewsletterHandler(deps.DB, deps.Mailer, deps.Config, deps.Log)

	serviceHandler := handlers.NewServiceHandler(deps.DB, deps.Uploader)
	bookingAdminHandler := handlers.NewBookingAdminHandler(listByDateUC, listByMonthUC, cancelUC)
	unavailableDatesHandler := handlers.NewUnavailableDatesHandler(deps.DB, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(deps.DB, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/settings", publicHandler.GetSettings)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.GET("/loyalty", publicHandler.LoyaltyCheck)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/photos", photosHandler.Upload)

			publicAPI.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
			publicAPI.GET("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(deps.Config))
		{
			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.POST("/services/:id/image", serviceHandler.UploadImage)

			admin.GET("/bookings", bookingAdminHandler.ListByDate)
			admin.GET("/bookings/month", bookingAdminHandler.ListByMonth)
			admin.PATCH("/bookings/:id/cancel", bookingAdminHandler.Cancel)

			admin.GET("/unavailable-dates", unavailableDatesHandler.List)
			admin.PUT("/unavailable-dates", unavailableDatesHandler.Upsert)

			admin.GET("/settings", settingsHandler.Get)
			admin.PATCH("/settings", settingsHandler.Update)

			admin.GET("/newsletter/subscribers", newsletterHandler.ListSubscribers)
			admin.POST("/newsletter/send", newsletterHandler.SendCampaign)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
