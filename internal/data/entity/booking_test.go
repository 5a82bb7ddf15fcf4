package entity

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingStatusPending, BookingStatusCheckedIn},
		{BookingStatusCheckedIn, BookingStatusCompleted},
		{BookingStatusCompleted, BookingStatusCheckedOut},
	}
	for _, tt := range allowed {
		if !CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = false, want true", tt.from, tt.to)
		}
	}

	rejected := []struct{ from, to BookingStatus }{
		{BookingStatusPending, BookingStatusCompleted},
		{BookingStatusPending, BookingStatusCheckedOut},
		{BookingStatusCheckedIn, BookingStatusPending},
		{BookingStatusCheckedOut, BookingStatusCompleted},
		{BookingStatusCheckedOut, BookingStatusCheckedOut},
		{BookingStatusCancel, BookingStatusCheckedIn},
		{BookingStatusReviewed, BookingStatusPending},
	}
	for _, tt := range rejected {
		if CanTransition(tt.from, tt.to) {
			t.Errorf("CanTransition(%s, %s) = true, want false", tt.from, tt.to)
		}
	}
}
