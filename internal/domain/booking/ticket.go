package booking

import (
	"fmt"
	"math/rand"
	"strings"
)

const ticketPrefix = "LLB"

// SuffixFunc supplies the 4-digit ticket suffix. Injected so tests
// are deterministic.
type SuffixFunc func() int

// RandomSuffix returns a number in [1000, 9999].
func RandomSuffix() int {
	return 1000 + rand.Intn(9000)
}

// NewTicketID builds a human-readable ticket reference in the form
// LLB-YYYYMMDD-NNNN. Uniqueness is not enforced; the ticket is a
// display reference, not a key.
func NewTicketID(date string, suffix SuffixFunc) string {
	if suffix == nil {
		suffix = RandomSuffix
	}
	return fmt.Sprintf(
		"%s-%s-%04d",
		ticketPrefix,
		strings.ReplaceAll(date, "-", ""),
		suffix(),
	)
}
