package booking

import (
	"context"
	"time"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

// Day states for the public date picker. A non-working day and a
// fully booked working day are both non-selectable, but the UI
// renders them differently.
const (
	DayClosed      = "closed"
	DayFullyBooked = "fully_booked"
	DayOpen        = "open"
)

type CalendarDay struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type GetCalendar struct {
	repo domain.Repository
}

func NewGetCalendar(repo domain.Repository) *GetCalendar {
	return &GetCalendar{repo: repo}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]CalendarDay, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	from := start.Format(domain.DateLayout)
	to := end.Format(domain.DateLayout)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	blockedDates, err := uc.repo.ListUnavailableDates(ctx, from, to)
	if err != nil {
		return nil, err
	}

	bookingsByDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		bookingsByDate[b.Date] = append(bookingsByDate[b.Date], b)
	}

	blockedByDate := make(map[string]*models.UnavailableDate)
	for i := range blockedDates {
		blockedByDate[blockedDates[i].Date] = &blockedDates[i]
	}

	days := make([]CalendarDay, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(domain.DateLayout)

		state := DayOpen
		switch {
		case len(domain.SlotsForWeekday(d)) == 0:
			state = DayClosed
		case domain.IsDateFullyBlocked(d, bookingsByDate[dateStr], blockedByDate[dateStr]):
			state = DayFullyBooked
		}

		days = append(days, CalendarDay{
			Date:  dateStr,
			State: state,
		})
	}

	return days, nil
}
