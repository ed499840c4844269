package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/utils"
)

// AuditService records who touched a booking, from where and on what device.
// Writes are best effort; a failed audit write is logged and swallowed so it
// never breaks the operation it describes.
type AuditService struct {
	auditRepo *database.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo *database.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// LogBookingCreated records a booking creation event
func (s *AuditService) LogBookingCreated(bookingID, userID, ipAddress, userAgent string) {
	s.log(models.AuditActionCreated, bookingID, userID, ipAddress, userAgent)
}

// LogBookingCancelled records a cancellation event
func (s *AuditService) LogBookingCancelled(bookingID, userID, ipAddress, userAgent string) {
	s.log(models.AuditActionCancelled, bookingID, userID, ipAddress, userAgent)
}

// LogRefundRecorded records a refund ledger write
func (s *AuditService) LogRefundRecorded(bookingID, userID, ipAddress, userAgent string) {
	s.log(models.AuditActionRefundRecorded, bookingID, userID, ipAddress, userAgent)
}

// LogRefundProcessed records an admin processing a refund payout
func (s *AuditService) LogRefundProcessed(bookingID, userID, ipAddress, userAgent string) {
	s.log(models.AuditActionRefundProcessed, bookingID, userID, ipAddress, userAgent)
}

// Trail returns the audit entries for a booking, oldest first
func (s *AuditService) Trail(bookingID string) ([]models.AuditEntry, error) {
	return s.auditRepo.GetByBookingID(bookingID)
}

func (s *AuditService) log(action models.AuditAction, bookingID, userID, ipAddress, userAgent string) {
	device := utils.ParseUserAgent(userAgent)

	entry := &models.AuditEntry{
		BookingID: bookingID,
		UserID:    userID,
		Action:    action,
		IPAddress: ipAddress,
		Device:    device.Summary(),
	}

	if err := s.auditRepo.Create(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"action":     action,
			"error":      err.Error(),
		}).Warn("Failed to write audit entry")
	}
}
