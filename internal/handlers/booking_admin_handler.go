package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/httperr"
	"github.com/lushlooksbeauty/studio-api/internal/httpresp"
	"github.com/lushlooksbeauty/studio-api/internal/middleware"
	ucBooking "github.com/lushlooksbeauty/studio-api/internal/usecase/booking"
)

type BookingAdminHandler struct {
	listByDate  *ucBooking.ListBookingsByDate
	listByMonth *ucBooking.ListBookingsByMonth
	cancel      *ucBooking.CancelBooking
}

func NewBookingAdminHandler(
	listByDate *ucBooking.ListBookingsByDate,
	listByMonth *ucBooking.ListBookingsByMonth,
	cancel *ucBooking.CancelBooking,
) *BookingAdminHandler {
	return &BookingAdminHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		cancel:      cancel,
	}
}

func (h *BookingAdminHandler) ListByDate(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().Format(domain.DateLayout))

	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingAdminHandler) ListByMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingAdminHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Booking is not cancellable.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel booking.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
