package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketPattern = regexp.MustCompile(`^LLB-\d{8}-\d{4}$`)

func TestNewTicketID(t *testing.T) {
	got := NewTicketID("2026-03-02", func() int { return 4242 })

	assert.Equal(t, "LLB-20260302-4242", got)
	assert.Regexp(t, ticketPattern, got)
}

func TestNewTicketIDDefaultsToRandomSuffix(t *testing.T) {
	got := NewTicketID("2026-03-02", nil)
	assert.Regexp(t, ticketPattern, got)
}

func TestRandomSuffixRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := RandomSuffix()
		require.GreaterOrEqual(t, s, 1000)
		require.LessOrEqual(t, s, 9999)
	}
}
