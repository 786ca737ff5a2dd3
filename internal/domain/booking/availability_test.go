package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lushlooksbeauty/studio-api/internal/models"
)

func confirmed(date, slot string) models.Booking {
	return models.Booking{
		Date:     date,
		TimeSlot: slot,
		Status:   string(StatusConfirmed),
	}
}

func TestUnavailableSlots(t *testing.T) {
	bookings := []models.Booking{
		confirmed("2026-03-02", "10:00"),
		confirmed("2026-03-02", "13:30"),
	}
	blocked := &models.UnavailableDate{
		Date:      "2026-03-02",
		TimeSlots: []string{"10:00", "15:00"},
	}

	taken := UnavailableSlots(bookings, blocked)

	// 10:00 is both booked and blocked; it counts once
	assert.Len(t, taken, 3)
	assert.Contains(t, taken, "10:00")
	assert.Contains(t, taken, "13:30")
	assert.Contains(t, taken, "15:00")
}

func TestUnavailableSlotsIgnoresCancelled(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-03-02", TimeSlot: "10:00", Status: string(StatusCancelled)},
	}

	assert.Empty(t, UnavailableSlots(bookings, nil))
}

func TestBookableSlots(t *testing.T) {
	monday := day(t, "2026-03-02")

	tests := []struct {
		name     string
		bookings []models.Booking
		blocked  *models.UnavailableDate
		want     []string
	}{
		{
			name: "nothing taken yields the full template",
			want: []string{"08:30", "10:00", "11:30", "13:30", "15:00"},
		},
		{
			name: "booked slots are subtracted in order",
			bookings: []models.Booking{
				confirmed("2026-03-02", "10:00"),
				confirmed("2026-03-02", "15:00"),
			},
			want: []string{"08:30", "11:30", "13:30"},
		},
		{
			name: "admin blocks combine with bookings",
			bookings: []models.Booking{
				confirmed("2026-03-02", "08:30"),
			},
			blocked: &models.UnavailableDate{
				Date:      "2026-03-02",
				TimeSlots: []string{"11:30", "13:30"},
			},
			want: []string{"10:00", "15:00"},
		},
		{
			name: "everything taken yields nothing",
			blocked: &models.UnavailableDate{
				Date:      "2026-03-02",
				TimeSlots: []string{"08:30", "10:00", "11:30", "13:30", "15:00"},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookableSlots(monday, tt.bookings, tt.blocked))
		})
	}
}

func TestBookableSlotsIsPure(t *testing.T) {
	monday := day(t, "2026-03-02")
	bookings := []models.Booking{confirmed("2026-03-02", "10:00")}

	first := BookableSlots(monday, bookings, nil)
	second := BookableSlots(monday, bookings, nil)

	assert.Equal(t, first, second)
}

func TestIsDateFullyBlocked(t *testing.T) {
	saturday := day(t, "2026-03-07")
	sunday := day(t, "2026-03-01")

	tests := []struct {
		name     string
		date     string
		bookings []models.Booking
		blocked  *models.UnavailableDate
		want     bool
	}{
		{
			name: "saturday with all three slots blocked",
			date: "2026-03-07",
			blocked: &models.UnavailableDate{
				Date:      "2026-03-07",
				TimeSlots: []string{"10:00", "11:30", "13:30"},
			},
			want: true,
		},
		{
			name: "saturday with one slot still open",
			date: "2026-03-07",
			blocked: &models.UnavailableDate{
				Date:      "2026-03-07",
				TimeSlots: []string{"10:00", "11:30"},
			},
			want: false,
		},
		{
			name: "bookings and blocks together cover the day",
			date: "2026-03-07",
			bookings: []models.Booking{
				confirmed("2026-03-07", "13:30"),
			},
			blocked: &models.UnavailableDate{
				Date:      "2026-03-07",
				TimeSlots: []string{"10:00", "11:30"},
			},
			want: true,
		},
		{
			name: "sunday is never fully blocked, only closed",
			date: "2026-03-01",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := saturday
			if tt.date == "2026-03-01" {
				d = sunday
			}
			assert.Equal(t, tt.want, IsDateFullyBlocked(d, tt.bookings, tt.blocked))
		})
	}
}
