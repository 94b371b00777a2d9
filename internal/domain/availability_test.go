package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySlot(t *testing.T) {
	slot := TimeSlot{ID: 1, StartTime: "09:00 AM", EndTime: "10:00 AM"}

	cases := []struct {
		name        string
		statuses    []BookingStatus
		wantStatus  SlotStatus
		wantPending int
	}{
		{"no bookings", nil, SlotAvailable, 0},
		{"single pending", []BookingStatus{StatusPending}, SlotPending, 1},
		{"queue of pending", []BookingStatus{StatusPending, StatusPending, StatusPending}, SlotPending, 3},
		{"confirmed wins over pending", []BookingStatus{StatusPending, StatusConfirmed, StatusPending}, SlotConfirmed, 0},
		{"only cancelled", []BookingStatus{StatusCancelled, StatusCancelled}, SlotAvailable, 0},
		{"cancelled ignored in queue depth", []BookingStatus{StatusPending, StatusCancelled}, SlotPending, 1},
		{"confirmed alone", []BookingStatus{StatusConfirmed}, SlotConfirmed, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := make([]*Booking, len(tc.statuses))
			for i, s := range tc.statuses {
				bookings[i] = &Booking{TimeSlotID: slot.ID, Status: s}
			}

			got := ClassifySlot(slot, bookings)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantPending, got.PendingCount)
			assert.Equal(t, slot, got.Slot)
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("approved"))
	assert.False(t, ValidStatus(""))
}
