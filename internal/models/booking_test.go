package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		ScheduleID:  "sched-1",
		JourneyDate: "2026-09-15",
		SeatNumbers: []int{4, 5},
		TotalSeats:  2,
		TotalFare:   90.00,
		Passengers: []PassengerRequest{
			{Name: "Asha Rao", Age: 31, Gender: "female", SeatNumber: 4},
			{Name: "Vikram Rao", Age: 34, Gender: "male", SeatNumber: 5},
		},
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate(now))
	})

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"Missing Schedule", func(r *CreateBookingRequest) { r.ScheduleID = "" }},
		{"No Seats", func(r *CreateBookingRequest) { r.SeatNumbers = nil; r.Passengers = nil }},
		{"Seat Count Mismatch", func(r *CreateBookingRequest) { r.TotalSeats = 3 }},
		{"Zero Fare", func(r *CreateBookingRequest) { r.TotalFare = 0 }},
		{"Negative Fare", func(r *CreateBookingRequest) { r.TotalFare = -10 }},
		{"Bad Date Format", func(r *CreateBookingRequest) { r.JourneyDate = "15-09-2026" }},
		{"Past Date", func(r *CreateBookingRequest) { r.JourneyDate = "2026-08-31" }},
		{"Duplicate Seat", func(r *CreateBookingRequest) {
			r.SeatNumbers = []int{4, 4}
			r.Passengers = nil
		}},
		{"Seat Zero", func(r *CreateBookingRequest) {
			r.SeatNumbers = []int{0, 5}
			r.Passengers = nil
		}},
		{"Passenger On Unlisted Seat", func(r *CreateBookingRequest) {
			r.Passengers[0].SeatNumber = 9
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			err := req.Validate(now)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSeatNumberSerialization(t *testing.T) {
	assert.Equal(t, "4,5,12", JoinSeatNumbers([]int{4, 5, 12}))

	seats, err := ParseSeatNumbers("4,5,12")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 12}, seats)

	_, err = ParseSeatNumbers("")
	assert.Error(t, err)

	_, err = ParseSeatNumbers("4,x")
	assert.Error(t, err)
}

func TestCanBeCancelled(t *testing.T) {
	booking := &Booking{Status: BookingStatusConfirmed}
	assert.True(t, booking.CanBeCancelled())

	booking.Status = BookingStatusCancelled
	assert.False(t, booking.CanBeCancelled())
}
