package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// RefundRepository handles refund ledger database operations
type RefundRepository struct {
	db DB
}

// NewRefundRepository creates a new RefundRepository
func NewRefundRepository(db DB) *RefundRepository {
	return &RefundRepository{db: db}
}

// Create inserts a refund record in pending status
func (r *RefundRepository) Create(refund *models.Refund) error {
	if refund.ID == "" {
		refund.ID = uuid.New().String()
	}
	if refund.Status == "" {
		refund.Status = models.RefundStatusPending
	}
	refund.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO refunds (
			id, booking_id, payment_id, amount, percentage, reason,
			status, refund_transaction_id, processed_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		refund.ID, refund.BookingID, refund.PaymentID, refund.Amount,
		refund.Percentage, refund.Reason, refund.Status,
		refund.RefundTransactionID, refund.ProcessedAt, refund.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}

	return nil
}

// GetByBookingID retrieves all refund records for a booking, newest first
func (r *RefundRepository) GetByBookingID(bookingID string) ([]models.Refund, error) {
	refunds := []models.Refund{}
	query := `
		SELECT id, booking_id, payment_id, amount, percentage, reason,
		       status, refund_transaction_id, processed_at, created_at
		FROM refunds
		WHERE booking_id = ?
		ORDER BY created_at DESC`

	if err := r.db.Select(&refunds, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to fetch refunds: %w", err)
	}

	return refunds, nil
}

// GetActiveByBookingID retrieves the latest non-cancelled refund for a
// booking, or nil when none exists
func (r *RefundRepository) GetActiveByBookingID(bookingID string) (*models.Refund, error) {
	refund := &models.Refund{}
	query := `
		SELECT id, booking_id, payment_id, amount, percentage, reason,
		       status, refund_transaction_id, processed_at, created_at
		FROM refunds
		WHERE booking_id = ? AND status != 'cancelled'
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.Get(refund, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch refund: %w", err)
	}

	return refund, nil
}

// MarkProcessed records the gateway transaction id and flips a pending
// refund to processed
func (r *RefundRepository) MarkProcessed(refundID, transactionID string) error {
	now := time.Now()
	result, err := r.db.Exec(`
		UPDATE refunds
		SET status = 'processed', refund_transaction_id = ?, processed_at = ?
		WHERE id = ? AND status = 'pending'`,
		transactionID, now, refundID)
	if err != nil {
		return fmt.Errorf("failed to mark refund processed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrAlreadyRefunded
	}

	return nil
}

// MarkFailed flips a pending refund to failed
func (r *RefundRepository) MarkFailed(refundID string) error {
	_, err := r.db.Exec(`
		UPDATE refunds SET status = 'failed' WHERE id = ? AND status = 'pending'`,
		refundID)
	if err != nil {
		return fmt.Errorf("failed to mark refund failed: %w", err)
	}

	return nil
}
