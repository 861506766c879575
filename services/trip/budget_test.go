package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBudgetTier(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I can spend $80 a night", "budget"},
		{"around $100 per night", "mid-range"},
		{"$300 works for me", "mid-range"},
		{"happy to pay $400", "luxury"},
		{"something cheap and cheerful", "budget"},
		{"budget hostels please", "budget"},
		{"a luxury resort", "luxury"},
		{"upscale boutique hotels", "luxury"},
		{"yes", "mid-range"},
		{"", "mid-range"},
		// An explicit price wins over keywords.
		{"a luxury stay for $90", "budget"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, deriveBudgetTier(tc.message), "message %q", tc.message)
	}
}
