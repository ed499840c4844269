package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// PaymentRepository handles payment database operations
type PaymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetByBookingID retrieves the payment recorded for a booking
func (r *PaymentRepository) GetByBookingID(bookingID string) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT id, booking_id, amount, method, transaction_id, status, created_at
		FROM payments
		WHERE booking_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.Get(payment, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}

	return payment, nil
}
