package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		assert.True(t, IsValidBookingStatus(s), s)
	}

	for _, s := range []string{"archived", "Pending", "", "done"} {
		assert.False(t, IsValidBookingStatus(s), s)
	}
}
