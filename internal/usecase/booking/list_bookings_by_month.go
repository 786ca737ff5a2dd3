package booking

import (
	"context"
	"time"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/dto"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	from := start.Format(domain.DateLayout)
	to := start.AddDate(0, 1, 0).Format(domain.DateLayout)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
