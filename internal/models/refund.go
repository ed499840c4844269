package models

import "time"

// RefundStatus represents the state of a refund record
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusFailed    RefundStatus = "failed"
	RefundStatusCancelled RefundStatus = "cancelled"
)

// Active reports whether this refund still counts against the
// one-active-refund-per-booking rule.
func (s RefundStatus) Active() bool {
	return s != RefundStatusCancelled
}

// Refund represents the money returned for a cancelled booking. At most one
// active refund exists per booking; a superseded refund is marked cancelled.
type Refund struct {
	ID                  string       `json:"id" db:"id"`
	BookingID           string       `json:"booking_id" db:"booking_id"`
	PaymentID           string       `json:"payment_id" db:"payment_id"`
	Amount              float64      `json:"amount" db:"amount"`
	Percentage          int          `json:"percentage" db:"percentage"`
	Reason              string       `json:"reason" db:"reason"`
	Status              RefundStatus `json:"status" db:"status"`
	RefundTransactionID *string      `json:"refund_transaction_id,omitempty" db:"refund_transaction_id"`
	ProcessedAt         *time.Time   `json:"processed_at,omitempty" db:"processed_at"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
}

// RefundPreview quotes the refund a cancellation would produce. For a
// booking that is already cancelled, Recorded carries the ledger row and
// the quote fields are zero.
type RefundPreview struct {
	BookingID  string  `json:"booking_id"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Reason     string  `json:"reason,omitempty"`
	Recorded   *Refund `json:"recorded,omitempty"`
}
