package models

import "time"

// PaymentStatus represents the state of a payment record
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusPending PaymentStatus = "pending"
)

// Payment represents the amount charged for a booking. Exactly one payment
// row is created inside the booking creation transaction.
type Payment struct {
	ID            string        `json:"id" db:"id"`
	BookingID     string        `json:"booking_id" db:"booking_id"`
	Amount        float64       `json:"amount" db:"amount"`
	Method        string        `json:"method" db:"method"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	Status        PaymentStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}
