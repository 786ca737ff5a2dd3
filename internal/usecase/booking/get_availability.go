package booking

import (
	"context"
	"time"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
)

type Slot struct {
	Time    string `json:"time"`    // 24h, "08:30"
	Display string `json:"display"` // "8:30 AM"
}

type DayAvailability struct {
	Date             string   `json:"date"`
	WorkingDay       bool     `json:"working_day"`
	FullyBlocked     bool     `json:"fully_blocked"`
	Slots            []Slot   `json:"slots"`
	UnavailableSlots []string `json:"unavailable_slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute projects the weekly template against current store state
// for one date. Nothing is cached; every call reads the store.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) (*DayAvailability, error) {

	dateStr := date.Format(domain.DateLayout)

	bookings, err := uc.repo.ListBookingsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.GetUnavailableDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	template := domain.SlotsForWeekday(date)
	bookable := domain.BookableSlots(date, bookings, blocked)
	taken := domain.UnavailableSlots(bookings, blocked)

	slots := make([]Slot, 0, len(bookable))
	for _, s := range bookable {
		slots = append(slots, Slot{
			Time:    s,
			Display: domain.FormatSlot(s),
		})
	}

	unavailable := make([]string, 0, len(taken))
	for _, s := range template {
		if _, ok := taken[s]; ok {
			unavailable = append(unavailable, s)
		}
	}

	return &DayAvailability{
		Date:             dateStr,
		WorkingDay:       len(template) > 0,
		FullyBlocked:     domain.IsDateFullyBlocked(date, bookings, blocked),
		Slots:            slots,
		UnavailableSlots: unavailable,
	}, nil
}
