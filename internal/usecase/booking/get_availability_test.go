package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestGetAvailabilityOpenMonday(t *testing.T) {
	repo := &fakeRepo{
		bookings: []models.Booking{{
			Date:     "2026-03-02",
			TimeSlot: "10:00",
			Status:   string(domain.StatusConfirmed),
		}},
		blocked: map[string]*models.UnavailableDate{
			"2026-03-02": {Date: "2026-03-02", TimeSlots: []string{"15:00"}},
		},
	}

	uc := NewGetAvailability(repo)
	day, err := uc.Execute(context.Background(), mustDate(t, "2026-03-02"))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", day.Date)
	assert.True(t, day.WorkingDay)
	assert.False(t, day.FullyBlocked)

	require.Len(t, day.Slots, 3)
	assert.Equal(t, Slot{Time: "08:30", Display: "8:30 AM"}, day.Slots[0])
	assert.Equal(t, Slot{Time: "11:30", Display: "11:30 AM"}, day.Slots[1])
	assert.Equal(t, Slot{Time: "13:30", Display: "1:30 PM"}, day.Slots[2])

	assert.Equal(t, []string{"10:00", "15:00"}, day.UnavailableSlots)
}

func TestGetAvailabilitySunday(t *testing.T) {
	uc := NewGetAvailability(&fakeRepo{})

	day, err := uc.Execute(context.Background(), mustDate(t, "2026-03-01"))
	require.NoError(t, err)

	assert.False(t, day.WorkingDay)
	assert.False(t, day.FullyBlocked)
	assert.Empty(t, day.Slots)
	assert.Empty(t, day.UnavailableSlots)
}

func TestGetAvailabilityFullyBlocked(t *testing.T) {
	repo := &fakeRepo{
		blocked: map[string]*models.UnavailableDate{
			"2026-03-07": {
				Date:      "2026-03-07",
				TimeSlots: []string{"10:00", "11:30", "13:30"},
			},
		},
	}

	uc := NewGetAvailability(repo)
	day, err := uc.Execute(context.Background(), mustDate(t, "2026-03-07"))
	require.NoError(t, err)

	assert.True(t, day.WorkingDay)
	assert.True(t, day.FullyBlocked)
	assert.Empty(t, day.Slots)
	assert.Equal(t, []string{"10:00", "11:30", "13:30"}, day.UnavailableSlots)
}
