package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of seats on one trip schedule
type Booking struct {
	ID                 string        `json:"id" db:"id"`
	UserID             string        `json:"user_id" db:"user_id"`
	ScheduleID         string        `json:"schedule_id" db:"schedule_id"`
	BookingReference   string        `json:"booking_reference" db:"booking_reference"`
	JourneyDate        time.Time     `json:"journey_date" db:"journey_date"`
	SeatNumbers        string        `json:"seat_numbers" db:"seat_numbers"`
	TotalSeats         int           `json:"total_seats" db:"total_seats"`
	TotalFare          float64       `json:"total_fare" db:"total_fare"`
	Status             BookingStatus `json:"status" db:"status"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancellationReason *string       `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`

	// Populated on detail queries, not stored on the bookings row
	Passengers []Passenger `json:"passengers,omitempty" db:"-"`
}

// Passenger represents one traveller on a booking
type Passenger struct {
	ID         string `json:"id" db:"id"`
	BookingID  string `json:"booking_id" db:"booking_id"`
	Name       string `json:"name" db:"name"`
	Age        int    `json:"age" db:"age"`
	Gender     string `json:"gender" db:"gender"`
	SeatNumber int    `json:"seat_number" db:"seat_number"`
}

// BookingDetail is a booking joined with its schedule, route and bus fields
type BookingDetail struct {
	Booking
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
	Fare          float64   `json:"fare" db:"fare"`
	Origin        string    `json:"origin" db:"origin"`
	Destination   string    `json:"destination" db:"destination"`
	BusNumber     string    `json:"bus_number" db:"bus_number"`
	BusType       string    `json:"bus_type" db:"bus_type"`
}

// PassengerRequest describes one traveller in a create request
type PassengerRequest struct {
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	SeatNumber int    `json:"seat_number" binding:"required"`
}

// CreateBookingRequest represents a request to reserve seats on a schedule
type CreateBookingRequest struct {
	ScheduleID  string             `json:"schedule_id" binding:"required"`
	JourneyDate string             `json:"journey_date" binding:"required"`
	SeatNumbers []int              `json:"seat_numbers" binding:"required"`
	TotalSeats  int                `json:"total_seats" binding:"required"`
	TotalFare   float64            `json:"total_fare" binding:"required"`
	Passengers  []PassengerRequest `json:"passengers"`

	// Defaults to card when omitted
	PaymentMethod string `json:"payment_method,omitempty"`
}

// Validate checks the request before any transaction is opened
func (r *CreateBookingRequest) Validate(now time.Time) error {
	if r.ScheduleID == "" {
		return fmt.Errorf("%w: schedule_id is required", ErrInvalidInput)
	}
	if len(r.SeatNumbers) == 0 {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidInput)
	}
	if r.TotalSeats <= 0 {
		return fmt.Errorf("%w: total_seats must be positive", ErrInvalidInput)
	}
	if len(r.SeatNumbers) != r.TotalSeats {
		return fmt.Errorf("%w: seat_numbers count (%d) does not match total_seats (%d)",
			ErrInvalidInput, len(r.SeatNumbers), r.TotalSeats)
	}
	if r.TotalFare <= 0 {
		return fmt.Errorf("%w: total_fare must be positive", ErrInvalidInput)
	}
	journeyDate, err := time.Parse("2006-01-02", r.JourneyDate)
	if err != nil {
		return fmt.Errorf("%w: journey_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if journeyDate.Before(today) {
		return fmt.Errorf("%w: journey_date cannot be in the past", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(r.SeatNumbers))
	for _, seat := range r.SeatNumbers {
		if seat <= 0 {
			return fmt.Errorf("%w: seat numbers must be positive", ErrInvalidInput)
		}
		if seen[seat] {
			return fmt.Errorf("%w: duplicate seat number %d", ErrInvalidInput, seat)
		}
		seen[seat] = true
	}
	for _, p := range r.Passengers {
		if p.Name == "" {
			return fmt.Errorf("%w: passenger name is required", ErrInvalidInput)
		}
		if p.Age <= 0 {
			return fmt.Errorf("%w: passenger age must be positive", ErrInvalidInput)
		}
		if !seen[p.SeatNumber] {
			return fmt.Errorf("%w: passenger seat %d is not in seat_numbers", ErrInvalidInput, p.SeatNumber)
		}
	}
	return nil
}

// JourneyDateParsed returns the parsed journey date. Call Validate first.
func (r *CreateBookingRequest) JourneyDateParsed() time.Time {
	d, _ := time.Parse("2006-01-02", r.JourneyDate)
	return d
}

// CancelBookingRequest represents a request to cancel a booking
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancellationResult is returned after a committed cancellation
type CancellationResult struct {
	BookingID   string    `json:"booking_id"`
	CancelledAt time.Time `json:"cancelled_at"`
	Reason      *string   `json:"reason,omitempty"`
	Refund      *Refund   `json:"refund,omitempty"`
	RefundError string    `json:"refund_error,omitempty"`
}

// CanBeCancelled reports whether the booking is still in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusConfirmed
}

// JoinSeatNumbers serializes seat numbers to the stored comma-delimited form
func JoinSeatNumbers(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// ParseSeatNumbers parses the stored comma-delimited seat list
func ParseSeatNumbers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty seat list")
	}
	parts := strings.Split(s, ",")
	seats := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q: %w", p, err)
		}
		seats = append(seats, n)
	}
	return seats, nil
}
