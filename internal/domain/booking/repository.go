package booking

import (
	"context"

	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type Repository interface {
	// -------- Services --------
	GetActiveServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Availability reads --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Booking, error)

	GetUnavailableDate(
		ctx context.Context,
		date string,
	) (*models.UnavailableDate, error)

	ListUnavailableDates(
		ctx context.Context,
		from string,
		to string,
	) ([]models.UnavailableDate, error)

	// -------- Loyalty --------
	CountBookingsByPhone(
		ctx context.Context,
		phone string,
	) (int64, error)

	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
