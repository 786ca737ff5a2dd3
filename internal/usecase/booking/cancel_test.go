package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/httperr"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

func TestCancelBooking(t *testing.T) {
	stored := &models.Booking{
		ID:       7,
		TicketID: "LLB-20260302-4242",
		Date:     "2026-03-02",
		TimeSlot: "10:00",
		Status:   string(domain.StatusConfirmed),
	}

	repo := &fakeRepo{stored: map[uint]*models.Booking{7: stored}}
	sink := &fakeSink{}
	uc := NewCancelBooking(repo, sink)

	b, err := uc.Execute(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Same(t, b, repo.updated)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "booking_cancelled", sink.events[0].Action)
}

func TestCancelBookingNotFound(t *testing.T) {
	repo := &fakeRepo{stored: map[uint]*models.Booking{}}
	uc := NewCancelBooking(repo, &fakeSink{})

	_, err := uc.Execute(context.Background(), 1, 99)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	stored := &models.Booking{ID: 7, Status: string(domain.StatusCancelled)}

	repo := &fakeRepo{stored: map[uint]*models.Booking{7: stored}}
	sink := &fakeSink{}
	uc := NewCancelBooking(repo, sink)

	_, err := uc.Execute(context.Background(), 1, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, repo.updated)
	assert.Empty(t, sink.events)
}
