package booking

import (
	"context"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/models"
	"github.com/lushlooksbeauty/studio-api/internal/payments"
)

// In-memory stand-ins for the store, the payment gateway, the
// idempotency guard and the audit dispatcher.

type fakeRepo struct {
	services     []models.Service
	bookings     []models.Booking
	blocked      map[string]*models.UnavailableDate
	blockedList  []models.UnavailableDate
	priorCount   int64
	createErr    error
	created      *models.Booking
	stored       map[uint]*models.Booking
	updated      *models.Booking
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetActiveServices(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.Status == string(domain.StatusConfirmed) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForPeriod(_ context.Context, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date >= from && b.Date < to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetUnavailableDate(_ context.Context, date string) (*models.UnavailableDate, error) {
	return f.blocked[date], nil
}

func (f *fakeRepo) ListUnavailableDates(_ context.Context, from, to string) ([]models.UnavailableDate, error) {
	var out []models.UnavailableDate
	for _, u := range f.blockedList {
		if u.Date >= from && u.Date < to {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountBookingsByPhone(_ context.Context, _ string) (int64, error) {
	return f.priorCount, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = 1
	f.created = b
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := f.stored[id]; ok {
		return b, nil
	}
	return nil, domain.ErrInvalidInput
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.updated = b
	return nil
}

type fakeVerifier struct {
	verification payments.Verification
	err          error
	calls        int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*payments.Verification, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &f.verification, nil
}

type fakeGuard struct {
	taken    map[string]bool
	acquired []string
	released []string
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{taken: make(map[string]bool)}
}

func (f *fakeGuard) Acquire(_ context.Context, ref string) (bool, error) {
	if f.taken[ref] {
		return false, nil
	}
	f.taken[ref] = true
	f.acquired = append(f.acquired, ref)
	return true, nil
}

func (f *fakeGuard) Release(_ context.Context, ref string) error {
	delete(f.taken, ref)
	f.released = append(f.released, ref)
	return nil
}

type fakeSink struct {
	events []audit.Event
}

func (f *fakeSink) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
