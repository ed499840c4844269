package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// AuditRepository handles booking audit log database operations
type AuditRepository struct {
	db DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts an audit entry
func (r *AuditRepository) Create(entry *models.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO booking_audit_log (id, booking_id, user_id, action, ip_address, device, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.BookingID, entry.UserID, entry.Action,
		entry.IPAddress, entry.Device, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	return nil
}

// GetByBookingID retrieves the audit trail for a booking, oldest first
func (r *AuditRepository) GetByBookingID(bookingID string) ([]models.AuditEntry, error) {
	entries := []models.AuditEntry{}
	query := `
		SELECT id, booking_id, user_id, action, ip_address, device, created_at
		FROM booking_audit_log
		WHERE booking_id = ?
		ORDER BY created_at`

	if err := r.db.Select(&entries, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to fetch audit trail: %w", err)
	}

	return entries, nil
}
