package models

import "time"

// AuditAction identifies what happened to a booking
type AuditAction string

const (
	AuditActionCreated         AuditAction = "booking_created"
	AuditActionCancelled       AuditAction = "booking_cancelled"
	AuditActionRefundRecorded  AuditAction = "refund_recorded"
	AuditActionRefundProcessed AuditAction = "refund_processed"
)

// AuditEntry is one row in the booking audit log
type AuditEntry struct {
	ID        string      `json:"id" db:"id"`
	BookingID string      `json:"booking_id" db:"booking_id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Action    AuditAction `json:"action" db:"action"`
	IPAddress string      `json:"ip_address" db:"ip_address"`
	Device    string      `json:"device" db:"device"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}
