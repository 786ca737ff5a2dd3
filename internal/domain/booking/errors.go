package booking

import "github.com/lushlooksbeauty/studio-api/internal/httperr"

// Admission outcome taxonomy. Anything else coming out of the store
// is a plain persistence failure and propagates as-is.
var (
	ErrInvalidInput       = httperr.ErrBusiness("invalid_input")
	ErrPaymentNotVerified = httperr.ErrBusiness("payment_not_verified")
	ErrPaymentAlreadyUsed = httperr.ErrBusiness("payment_already_used")
	ErrSlotUnavailable    = httperr.ErrBusiness("slot_unavailable")
	ErrSlotConflict       = httperr.ErrBusiness("slot_conflict")
)
