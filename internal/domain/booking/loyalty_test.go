package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountApplies(t *testing.T) {
	tests := []struct {
		priorCount int64
		want       bool
	}{
		{0, false}, // 1st booking
		{1, false},
		{4, false},
		{5, true}, // 6th booking
		{6, false},
		{10, false},
		{11, true}, // 12th booking
		{17, true}, // 18th booking
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountApplies(tt.priorCount),
			"prior count %d", tt.priorCount)
	}
}
