package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lushlooksbeauty/studio-api/internal/audit"
	domain "github.com/lushlooksbeauty/studio-api/internal/domain/booking"
	"github.com/lushlooksbeauty/studio-api/internal/httperr"
	"github.com/lushlooksbeauty/studio-api/internal/idempotency"
	"github.com/lushlooksbeauty/studio-api/internal/models"
	"github.com/lushlooksbeauty/studio-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type AdmitBookingInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	Date     string // YYYY-MM-DD
	TimeSlot string // HH:MM

	ServiceIDs []uint
	Notes      string
	PhotoKeys  []string

	PaymentID string
}

// ======================================================
// USE CASE
// ======================================================

type AdmitBooking struct {
	repo     domain.Repository
	verifier payments.Verifier
	guard    idempotency.Guard
	audit    audit.Sink
	log      zerolog.Logger
	suffix   domain.SuffixFunc
}

func NewAdmitBooking(
	repo domain.Repository,
	verifier payments.Verifier,
	guard idempotency.Guard,
	auditSink audit.Sink,
	log zerolog.Logger,
	suffix domain.SuffixFunc,
) *AdmitBooking {
	if suffix == nil {
		suffix = domain.RandomSuffix
	}
	return &AdmitBooking{
		repo:     repo,
		verifier: verifier,
		guard:    guard,
		audit:    auditSink,
		log:      log,
		suffix:   suffix,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute turns a payment-backed candidate into a persisted booking.
// Linear pipeline, no retries, no compensation: if the store write
// fails after the payment verified, the error is surfaced and the
// charge has to be reconciled by hand.
func (uc *AdmitBooking) Execute(
	ctx context.Context,
	in AdmitBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Candidate shape
	// --------------------------------------------------
	if in.ClientName == "" || in.ClientPhone == "" || in.PaymentID == "" || len(in.ServiceIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	inTemplate := false
	for _, s := range domain.SlotsForWeekday(date) {
		if s == in.TimeSlot {
			inTemplate = true
			break
		}
	}
	if !inTemplate {
		return nil, domain.ErrInvalidInput
	}

	services, err := uc.repo.GetActiveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, domain.ErrInvalidInput
	}

	// --------------------------------------------------
	// 2. One booking per payment reference
	// --------------------------------------------------
	acquired, err := uc.guard.Acquire(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.ErrPaymentAlreadyUsed
	}

	b, err := uc.admit(ctx, in, date, services)
	if err != nil {
		if relErr := uc.guard.Release(ctx, in.PaymentID); relErr != nil {
			uc.log.Error().Err(relErr).
				Str("payment_id", in.PaymentID).
				Msg("failed to release payment reference")
		}
		return nil, err
	}

	return b, nil
}

func (uc *AdmitBooking) admit(
	ctx context.Context,
	in AdmitBookingInput,
	date time.Time,
	services []models.Service,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 3. Payment precondition
	// --------------------------------------------------
	verification, err := uc.verifier.Verify(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if !verification.Approved || verification.Amount < domain.DepositAmount {
		return nil, domain.ErrPaymentNotVerified
	}

	// --------------------------------------------------
	// 4. Slot still bookable
	// --------------------------------------------------
	existing, err := uc.repo.ListBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	blocked, err := uc.repo.GetUnavailableDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	free := false
	for _, s := range domain.BookableSlots(date, existing, blocked) {
		if s == in.TimeSlot {
			free = true
			break
		}
	}
	if !free {
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// 5. Loyalty discount (same rule as the UI pre-check)
	// --------------------------------------------------
	priorCount, err := uc.repo.CountBookingsByPhone(ctx, in.ClientPhone)
	if err != nil {
		return nil, err
	}
	discount := domain.DiscountApplies(priorCount)

	// --------------------------------------------------
	// 6. Create
	// --------------------------------------------------
	b := &models.Booking{
		TicketID:         domain.NewTicketID(in.Date, uc.suffix),
		ClientName:       in.ClientName,
		ClientPhone:      in.ClientPhone,
		ClientEmail:      in.ClientEmail,
		Date:             in.Date,
		TimeSlot:         in.TimeSlot,
		Services:         services,
		Notes:            in.Notes,
		PhotoKeys:        in.PhotoKeys,
		DiscountApplied:  discount,
		PaymentReference: in.PaymentID,
		Status:           string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			return nil, err
		}

		// The charge went through but no booking exists. Operators
		// grep for reconciliation_required to match the payment
		// against the missing record.
		uc.log.Error().Err(err).
			Str("payment_id", in.PaymentID).
			Float64("amount", verification.Amount).
			Str("date", in.Date).
			Str("time_slot", in.TimeSlot).
			Bool("reconciliation_required", true).
			Msg("payment verified but booking not persisted")
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_admitted",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"ticket_id":        b.TicketID,
			"date":             b.Date,
			"time_slot":        b.TimeSlot,
			"discount_applied": b.DiscountApplied,
		},
	})

	return b, nil
}
