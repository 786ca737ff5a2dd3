package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/httperr"
	"github.com/lushlooksbeauty/studio-api/internal/models"
	ucBooking "github.com/lushlooksbeauty/studio-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *ucBooking.GetAvailability
	calendar     *ucBooking.GetCalendar
	admit        *ucBooking.AdmitBooking
	repo         domain.Repository
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	calendar *ucBooking.GetCalendar,
	admit *ucBooking.AdmitBooking,
	repo domain.Repository,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		calendar:     calendar,
		admit:        admit,
		repo:         repo,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`

	Date     string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot" binding:"required"` // HH:MM

	ServiceIDs []uint   `json:"service_ids" binding:"required,min=1"`
	Notes      string   `json:"notes"`
	PhotoKeys  []string `json:"photo_keys"`

	PaymentID string `json:"payment_id" binding:"required"`
}

////////////////////////////////////////////////////////
// SERVICES / SETTINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))

	q := h.db.Where("active = true")
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Could not load site settings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings":       settings,
		"deposit_amount": domain.DepositAmount,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY / CALENDAR
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	day, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *PublicHandler) Calendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	days, err := h.calendar.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "calendar_failed", "Could not compute calendar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

////////////////////////////////////////////////////////
// LOYALTY PRE-CHECK
////////////////////////////////////////////////////////

// LoyaltyCheck lets the booking form show the discount before
// payment. It runs the same rule the admission applies at creation
// time.
func (h *PublicHandler) LoyaltyCheck(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		httperr.BadRequest(c, "missing_params", "Phone is required.")
		return
	}

	count, err := h.repo.CountBookingsByPhone(c.Request.Context(), phone)
	if err != nil {
		httperr.Internal(c, "loyalty_check_failed", "Could not check loyalty status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prior_bookings":   count,
		"discount_applies": domain.DiscountApplies(count),
	})
}

////////////////////////////////////////////////////////
// BOOKING ADMISSION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.admit.Execute(
		c.Request.Context(),
		ucBooking.AdmitBookingInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			Date:        req.Date,
			TimeSlot:    req.TimeSlot,
			ServiceIDs:  req.ServiceIDs,
			Notes:       req.Notes,
			PhotoKeys:   req.PhotoKeys,
			PaymentID:   req.PaymentID,
		},
	)
	if err != nil {
		mapAdmissionErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":           b,
		"time_slot_display": domain.FormatSlot(b.TimeSlot),
	})
}

func mapAdmissionErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_input"),
		httperr.IsBusiness(err, "invalid_payment_reference"):
		httperr.BadRequest(c, "invalid_input", "Invalid booking data.")

	case httperr.IsBusiness(err, "payment_not_verified"):
		httperr.UnprocessableEntity(c, "payment_not_verified", "Payment could not be verified or is below the required deposit.")

	case httperr.IsBusiness(err, "payment_already_used"):
		httperr.Conflict(c, "payment_already_used", "This payment was already used for a booking.")

	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.Conflict(c, "slot_unavailable", "The requested slot is no longer available.")

	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Someone else booked this slot first. Please pick another.")

	default:
		httperr.Internal(c, "booking_failed", "Could not complete the booking. Please contact the studio.")
	}
}

////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////

func parseYearMonth(c *gin.Context) (int, int, bool) {
	now := time.Now()

	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))

	if year < 2000 || year > 2200 || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_params", "Invalid year or month.")
		return 0, 0, false
	}

	return year, month, true
}
