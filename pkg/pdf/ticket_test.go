package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

func testBookingDetail() *models.BookingDetail {
	return &models.BookingDetail{
		Booking: models.Booking{
			ID:               "booking-1",
			BookingReference: "ZB-20260915-A1B2C3",
			JourneyDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			SeatNumbers:      "4,5",
			TotalSeats:       2,
			TotalFare:        90.00,
			Status:           models.BookingStatusConfirmed,
			Passengers: []models.Passenger{
				{Name: "Asha Rao", Age: 31, Gender: "female", SeatNumber: 4},
				{Name: "Vikram Rao", Age: 34, Gender: "male", SeatNumber: 5},
			},
		},
		DepartureTime: time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
		Origin:        "Bengaluru",
		Destination:   "Chennai",
		BusNumber:     "KA-01-F-1234",
		BusType:       "AC Sleeper",
	}
}

func TestBuildTicket(t *testing.T) {
	data, filename, err := BuildTicket(testBookingDetail())
	require.NoError(t, err)

	assert.Equal(t, "TICKET_ZB-20260915-A1B2C3.pdf", filename)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildTicket_RejectsCancelledBooking(t *testing.T) {
	detail := testBookingDetail()
	detail.Status = models.BookingStatusCancelled

	_, _, err := BuildTicket(detail)
	assert.Error(t, err)
}
