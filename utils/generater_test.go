package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingIDFormat(t *testing.T) {
	id := GenerateBookingID()
	require.Regexp(t, regexp.MustCompile(`^BK\d{13}[0-9A-Z]{5}$`), id)
}

func TestGenerateBookingIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := GenerateBookingID()
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		require.Regexp(t, regexp.MustCompile(`^\d{4}$`), otp)
	}
}
