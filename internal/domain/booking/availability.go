package booking

import (
	"time"

	"github.com/lushlooksbeauty/studio-api/internal/models"
)

// UnavailableSlots is the union of slots already taken by confirmed
// bookings on the date and slots the admin blocked for it. Set
// semantics: a slot both booked and blocked counts once.
func UnavailableSlots(
	bookingsForDate []models.Booking,
	blocked *models.UnavailableDate,
) map[string]struct{} {

	taken := make(map[string]struct{})

	for _, b := range bookingsForDate {
		if b.Status == string(StatusCancelled) {
			continue
		}
		taken[b.TimeSlot] = struct{}{}
	}

	if blocked != nil {
		for _, s := range blocked.TimeSlots {
			taken[s] = struct{}{}
		}
	}

	return taken
}

// BookableSlots filters the weekday template down to slots a client
// may still request, preserving template order.
func BookableSlots(
	date time.Time,
	bookingsForDate []models.Booking,
	blocked *models.UnavailableDate,
) []string {

	taken := UnavailableSlots(bookingsForDate, blocked)

	var out []string
	for _, slot := range SlotsForWeekday(date) {
		if _, ok := taken[slot]; ok {
			continue
		}
		out = append(out, slot)
	}

	return out
}

// IsDateFullyBlocked reports whether a working day has every template
// slot taken. A day with no template slots (Sunday) is not "blocked",
// it is simply not a working day; the calendar treats the two
// differently.
func IsDateFullyBlocked(
	date time.Time,
	bookingsForDate []models.Booking,
	blocked *models.UnavailableDate,
) bool {

	template := SlotsForWeekday(date)
	if len(template) == 0 {
		return false
	}

	taken := UnavailableSlots(bookingsForDate, blocked)

	for _, slot := range template {
		if _, ok := taken[slot]; !ok {
			return false
		}
	}

	return true
}
