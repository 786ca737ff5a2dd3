package booking

import (
	"time"

	"github.com/lushlooksbeauty/studio-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel flips a confirmed booking to cancelled. The slot becomes
// bookable again and the booking stops counting toward the loyalty
// ordinal.
func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
