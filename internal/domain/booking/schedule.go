package booking

import (
	"fmt"
	"time"
)

// Fixed weekly template. Studio hours change by editing these
// literals, not through configuration.
var (
	weekdaySlots  = []string{"08:30", "10:00", "11:30", "13:30", "15:00"} // Mon-Thu
	fridaySlots   = []string{"08:30", "10:00", "11:30", "13:30"}
	saturdaySlots = []string{"10:00", "11:30", "13:30"}
)

const DateLayout = "2006-01-02"

// SlotsForWeekday returns the slots the studio offers on the given
// date's weekday, in chronological order. Sunday is empty.
func SlotsForWeekday(date time.Time) []string {
	var template []string

	switch date.Weekday() {
	case time.Sunday:
		return nil
	case time.Friday:
		template = fridaySlots
	case time.Saturday:
		template = saturdaySlots
	default:
		template = weekdaySlots
	}

	out := make([]string, len(template))
	copy(out, template)
	return out
}

// FormatSlot converts a 24-hour "HH:MM" slot to "h:MM AM|PM".
// Hour 0 displays as 12 AM, hour 12 as 12 PM.
func FormatSlot(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}

	hour := t.Hour()

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), suffix)
}
