package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-01 is a Sunday, so the following week covers every
// template case.
func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, date)
	require.NoError(t, err)
	return d
}

func TestSlotsForWeekday(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		slots []string
	}{
		{
			name:  "monday has the full weekday template",
			date:  "2026-03-02",
			slots: []string{"08:30", "10:00", "11:30", "13:30", "15:00"},
		},
		{
			name:  "thursday matches monday",
			date:  "2026-03-05",
			slots: []string{"08:30", "10:00", "11:30", "13:30", "15:00"},
		},
		{
			name:  "friday drops the late slot",
			date:  "2026-03-06",
			slots: []string{"08:30", "10:00", "11:30", "13:30"},
		},
		{
			name:  "saturday starts late",
			date:  "2026-03-07",
			slots: []string{"10:00", "11:30", "13:30"},
		},
		{
			name:  "sunday is closed",
			date:  "2026-03-01",
			slots: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.slots, SlotsForWeekday(day(t, tt.date)))
		})
	}
}

func TestSlotsForWeekdayReturnsCopy(t *testing.T) {
	d := day(t, "2026-03-02")

	first := SlotsForWeekday(d)
	first[0] = "corrupted"

	assert.Equal(t, "08:30", SlotsForWeekday(d)[0])
}

func TestFormatSlot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"08:30", "8:30 AM"},
		{"11:30", "11:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"15:00", "3:00 PM"},
		{"23:45", "11:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSlot(tt.in))
		})
	}
}

func TestFormatSlotPassesThroughGarbage(t *testing.T) {
	assert.Equal(t, "not-a-slot", FormatSlot("not-a-slot"))
}
