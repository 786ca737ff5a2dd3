package payments

import "context"

// Verification is everything the admission flow needs to know about a
// payment: whether the provider reports it approved and how much was
// actually charged.
type Verification struct {
	Approved bool
	Amount   float64
}

// Verifier resolves a client-supplied payment reference against the
// payment provider. The booking core treats it as a black box.
type Verifier interface {
	Verify(ctx context.Context, paymentID string) (*Verification, error)
}
