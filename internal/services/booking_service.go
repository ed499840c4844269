package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/monitoring"
)

// BookingService sequences the booking lifecycle: validation and
// authorization up front, the repository transaction in the middle, and
// refund recording after the cancellation has committed.
type BookingService struct {
	bookingRepo  *database.BookingRepository
	scheduleRepo *database.ScheduleRepository
	paymentRepo  *database.PaymentRepository
	refundRepo   *database.RefundRepository
	calculator   *RefundCalculator
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo *database.BookingRepository,
	scheduleRepo *database.ScheduleRepository,
	paymentRepo *database.PaymentRepository,
	refundRepo *database.RefundRepository,
	calculator *RefundCalculator,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		paymentRepo:  paymentRepo,
		refundRepo:   refundRepo,
		calculator:   calculator,
	}
}

// CreateBooking validates the request, then reserves seats, creates the
// booking with its passengers and records the payment in one transaction.
func (s *BookingService) CreateBooking(userID string, req *models.CreateBookingRequest) (*models.BookingDetail, error) {
	if err := req.Validate(time.Now()); err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = "card"
	}

	booking := &models.Booking{
		UserID:      userID,
		ScheduleID:  req.ScheduleID,
		JourneyDate: req.JourneyDateParsed(),
		SeatNumbers: models.JoinSeatNumbers(req.SeatNumbers),
		TotalSeats:  req.TotalSeats,
		TotalFare:   req.TotalFare,
	}

	passengers := make([]models.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = models.Passenger{
			Name:       p.Name,
			Age:        p.Age,
			Gender:     p.Gender,
			SeatNumber: p.SeatNumber,
		}
	}

	payment := &models.Payment{
		Amount:        req.TotalFare,
		Method:        method,
		TransactionID: fmt.Sprintf("TXN-%s", uuid.New().String()),
		Status:        models.PaymentStatusSuccess,
	}

	if err := s.bookingRepo.CreateBooking(booking, passengers, payment, s.scheduleRepo); err != nil {
		switch {
		case errors.Is(err, models.ErrInsufficientSeats):
			monitoring.BookingFailures.WithLabelValues("insufficient_seats").Inc()
		case errors.Is(err, models.ErrScheduleNotFound):
			monitoring.BookingFailures.WithLabelValues("schedule_not_found").Inc()
		default:
			monitoring.BookingFailures.WithLabelValues("internal").Inc()
		}
		return nil, err
	}

	monitoring.BookingsCreated.Inc()
	logrus.WithFields(logrus.Fields{
		"booking_id":        booking.ID,
		"booking_reference": booking.BookingReference,
		"user_id":           userID,
		"schedule_id":       booking.ScheduleID,
		"total_seats":       booking.TotalSeats,
	}).Info("Booking created")

	return s.bookingRepo.GetByID(booking.ID)
}

// GetBooking retrieves a booking for its owner or an admin
func (s *BookingService) GetBooking(userID string, isAdmin bool, bookingID string) (*models.BookingDetail, error) {
	detail, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if detail.UserID != userID && !isAdmin {
		return nil, models.ErrUnauthorized
	}
	return detail, nil
}

// GetUserBookings retrieves the caller's bookings, newest first
func (s *BookingService) GetUserBookings(userID string, limit, offset int) ([]models.BookingDetail, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookingRepo.GetByUserID(userID, limit, offset)
}

// ListBookings retrieves bookings across all users (admin)
func (s *BookingService) ListBookings(limit, offset int) ([]models.BookingDetail, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookingRepo.ListAll(limit, offset)
}

// CancelBooking cancels a booking and records the refund owed under the
// cancellation policy. The cancellation transaction commits first; refund
// recording happens afterwards and never rolls the cancellation back. When
// refund recording fails, the result carries the error message and the
// refund can be recovered later with EnsureRefund.
func (s *BookingService) CancelBooking(
	userID string,
	isAdmin bool,
	bookingID string,
	req *models.CancelBookingRequest,
) (*models.CancellationResult, error) {
	detail, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if detail.UserID != userID && !isAdmin {
		return nil, models.ErrUnauthorized
	}

	// Departures less than two hours out are closed for self-service
	// cancellation. Admins can still cancel; the refund comes out to zero.
	if !isAdmin && time.Until(detail.DepartureTime) < noRefundWindow {
		return nil, models.ErrCancellationClosed
	}

	var reason *string
	if req != nil {
		reason = req.Reason
	}

	booking, err := s.bookingRepo.CancelBooking(bookingID, reason, s.scheduleRepo)
	if err != nil {
		return nil, err
	}

	monitoring.BookingsCancelled.Inc()
	logrus.WithFields(logrus.Fields{
		"booking_id":        booking.ID,
		"booking_reference": booking.BookingReference,
		"user_id":           userID,
	}).Info("Booking cancelled")

	result := &models.CancellationResult{
		BookingID:   booking.ID,
		CancelledAt: *booking.CancelledAt,
		Reason:      booking.CancellationReason,
	}

	refund, err := s.recordRefund(detail, *booking.CancelledAt)
	if err != nil {
		// The cancellation stands. The missing ledger row is repairable.
		logrus.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"error":      err.Error(),
		}).Warn("Refund recording failed after cancellation")
		monitoring.RefundsRecorded.WithLabelValues("failed").Inc()
		result.RefundError = "refund could not be recorded; it will be processed separately"
		return result, nil
	}

	monitoring.RefundsRecorded.WithLabelValues(string(refund.Status)).Inc()
	result.Refund = refund
	return result, nil
}

// PreviewRefund quotes the refund a cancellation would produce right now.
// For an already cancelled booking it returns the recorded refund instead.
func (s *BookingService) PreviewRefund(userID string, isAdmin bool, bookingID string) (*models.RefundPreview, error) {
	detail, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if detail.UserID != userID && !isAdmin {
		return nil, models.ErrUnauthorized
	}

	preview := &models.RefundPreview{BookingID: bookingID}

	if detail.Status == models.BookingStatusCancelled {
		refund, err := s.refundRepo.GetActiveByBookingID(bookingID)
		if err != nil {
			return nil, err
		}
		preview.Recorded = refund
		return preview, nil
	}

	quote := s.calculator.Calculate(detail.TotalFare, detail.DepartureTime, time.Now())
	preview.Amount = quote.Amount
	preview.Percentage = quote.Percentage
	preview.Reason = quote.Reason
	return preview, nil
}

// EnsureRefund backfills the refund record for a cancelled booking whose
// refund recording failed. Idempotent: an existing active refund is
// returned as-is.
func (s *BookingService) EnsureRefund(bookingID string) (*models.Refund, error) {
	detail, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if detail.Status != models.BookingStatusCancelled || detail.CancelledAt == nil {
		return nil, fmt.Errorf("%w: booking is not cancelled", models.ErrInvalidInput)
	}

	existing, err := s.refundRepo.GetActiveByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	refund, err := s.recordRefund(detail, *detail.CancelledAt)
	if err != nil {
		return nil, err
	}

	monitoring.RefundsRecorded.WithLabelValues(string(refund.Status)).Inc()
	logrus.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"refund_id":  refund.ID,
	}).Info("Refund backfilled")

	return refund, nil
}

// recordRefund computes the refund as of cancelledAt and writes the ledger
// row. Duplicate prevention lives here, not in the database layer.
func (s *BookingService) recordRefund(detail *models.BookingDetail, cancelledAt time.Time) (*models.Refund, error) {
	existing, err := s.refundRepo.GetActiveByBookingID(detail.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrAlreadyRefunded
	}

	payment, err := s.paymentRepo.GetByBookingID(detail.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to locate payment for refund: %w", err)
	}

	quote := s.calculator.Calculate(detail.TotalFare, detail.DepartureTime, cancelledAt)

	refund := &models.Refund{
		BookingID:  detail.ID,
		PaymentID:  payment.ID,
		Amount:     quote.Amount,
		Percentage: quote.Percentage,
		Reason:     quote.Reason,
		Status:     models.RefundStatusPending,
	}
	if err := s.refundRepo.Create(refund); err != nil {
		return nil, err
	}

	return refund, nil
}

// ProcessRefund records the gateway transaction id for a pending refund
// and marks it processed (admin).
func (s *BookingService) ProcessRefund(refundID, transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("%w: transaction_id is required", models.ErrInvalidInput)
	}

	if err := s.refundRepo.MarkProcessed(refundID, transactionID); err != nil {
		return err
	}

	monitoring.RefundsRecorded.WithLabelValues("processed").Inc()
	logrus.WithFields(logrus.Fields{
		"refund_id":      refundID,
		"transaction_id": transactionID,
	}).Info("Refund processed")

	return nil
}
