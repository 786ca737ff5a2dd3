package booking

import (
	"context"
	"time"

	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/dto"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	from := date.Format(domain.DateLayout)
	to := date.AddDate(0, 0, 1).Format(domain.DateLayout)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		names := make([]string, 0, len(b.Services))
		for _, s := range b.Services {
			names = append(names, s.Name)
		}

		out = append(out, dto.BookingListDTO{
			ID:              b.ID,
			TicketID:        b.TicketID,
			Date:            b.Date,
			TimeSlot:        b.TimeSlot,
			TimeSlotDisplay: domain.FormatSlot(b.TimeSlot),
			Status:          b.Status,
			ClientName:      b.ClientName,
			ClientPhone:     b.ClientPhone,
			ServiceNames:    names,
			DiscountApplied: b.DiscountApplied,
			CreatedAt:       b.CreatedAt,
		})
	}
	return out
}
