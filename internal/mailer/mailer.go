package mailer

import "context"

// Mailer delivers a single message. Delivery guarantees are the
// transport's problem; callers only get success/failure per
// recipient.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
