package booking

import (
	"context"
	"time"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/httperr"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCancelBooking(
	repo domain.Repository,
	auditSink audit.Sink,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditSink,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
