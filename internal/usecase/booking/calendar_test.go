package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

func TestGetCalendarMarch2026(t *testing.T) {
	repo := &fakeRepo{
		// Saturday 2026-03-07 fully booked through its three slots
		bookings: []models.Booking{
			{Date: "2026-03-07", TimeSlot: "10:00", Status: string(domain.StatusConfirmed)},
			{Date: "2026-03-07", TimeSlot: "11:30", Status: string(domain.StatusConfirmed)},
			{Date: "2026-03-07", TimeSlot: "13:30", Status: string(domain.StatusConfirmed)},
			// one booking on a Monday leaves the day open
			{Date: "2026-03-02", TimeSlot: "10:00", Status: string(domain.StatusConfirmed)},
		},
		// Tuesday 2026-03-10 blocked end to end by the admin
		blockedList: []models.UnavailableDate{{
			Date:      "2026-03-10",
			TimeSlots: []string{"08:30", "10:00", "11:30", "13:30", "15:00"},
		}},
	}

	uc := NewGetCalendar(repo)
	days, err := uc.Execute(context.Background(), 2026, 3)
	require.NoError(t, err)

	require.Len(t, days, 31)

	byDate := make(map[string]string, len(days))
	for _, d := range days {
		byDate[d.Date] = d.State
	}

	assert.Equal(t, DayClosed, byDate["2026-03-01"]) // Sunday
	assert.Equal(t, DayClosed, byDate["2026-03-08"])
	assert.Equal(t, DayOpen, byDate["2026-03-02"])
	assert.Equal(t, DayFullyBooked, byDate["2026-03-07"])
	assert.Equal(t, DayFullyBooked, byDate["2026-03-10"])
	assert.Equal(t, DayOpen, byDate["2026-03-31"])
}

func TestGetCalendarCancelledBookingsKeepDayOpen(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{
			{Date: "2026-03-07", TimeSlot: "10:00", Status: string(domain.StatusCancelled)},
			{Date: "2026-03-07", TimeSlot: "11:30", Status: string(domain.StatusCancelled)},
			{Date: "2026-03-07", TimeSlot: "13:30", Status: string(domain.StatusCancelled)},
		},
	}

	uc := NewGetCalendar(repo)
	days, err := uc.Execute(context.Background(), 2026, 3)
	require.NoError(t, err)

	for _, d := range days {
		if d.Date == "2026-03-07" {
			assert.Equal(t, DayOpen, d.State)
		}
	}
}
