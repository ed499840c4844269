package models

import "errors"

// Domain errors surfaced by the booking service. Handlers map these to
// HTTP statuses; everything else is treated as an internal failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInsufficientSeats  = errors.New("insufficient seats available")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrAlreadyRefunded    = errors.New("booking already has an active refund")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrCancellationClosed = errors.New("cancellation window has closed")
)

var (
	ErrBusNotFound   = errors.New("bus not found")
	ErrRouteNotFound = errors.New("route not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email is already registered")
	ErrScheduleInUse = errors.New("schedule has confirmed bookings")
)
