package database

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// BookingRepository handles booking database operations. The multi-table
// create and cancel transactions live here; the seat ledger is passed in so
// counter updates share the same transaction as the booking rows.
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GenerateBookingReference generates a unique booking reference.
// Format: ZB-YYYYMMDD-XXXXXX (6 char alphanumeric)
func (r *BookingRepository) GenerateBookingReference() (string, error) {
	todayStr := time.Now().Format("20060102")

	for attempts := 0; attempts < 10; attempts++ {
		randomBytes := make([]byte, 3)
		if _, err := rand.Read(randomBytes); err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		randomStr := strings.ToUpper(hex.EncodeToString(randomBytes))

		newRef := fmt.Sprintf("ZB-%s-%s", todayStr, randomStr)

		var count int
		err := r.db.Get(&count, `SELECT COUNT(*) FROM bookings WHERE booking_reference = ?`, newRef)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}

		if count == 0 {
			return newRef, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique booking reference after 10 attempts")
}

// CreateBooking creates a booking, its passengers and its payment row in one
// transaction, decrementing the schedule's seat counter under the same
// transaction. Any failure rolls the whole thing back.
func (r *BookingRepository) CreateBooking(
	booking *models.Booking,
	passengers []models.Passenger,
	payment *models.Payment,
	scheduleRepo *ScheduleRepository,
) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Lock the schedule row; distinguishes ScheduleNotFound from
	// InsufficientSeats and serializes concurrent reservations.
	schedule, err := scheduleRepo.GetByIDForUpdate(tx, booking.ScheduleID)
	if err != nil {
		return err
	}
	if schedule.Status != models.ScheduleStatusActive {
		return models.ErrScheduleNotFound
	}

	// 2. Check-and-decrement the seat counter.
	if err := scheduleRepo.ReserveSeats(tx, booking.ScheduleID, booking.TotalSeats); err != nil {
		return err
	}

	// 3. Insert booking row.
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.BookingReference == "" {
		ref, err := r.GenerateBookingReference()
		if err != nil {
			return err
		}
		booking.BookingReference = ref
	}
	now := time.Now()
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err = tx.Exec(`
		INSERT INTO bookings (
			id, user_id, schedule_id, booking_reference, journey_date,
			seat_numbers, total_seats, total_fare, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.ID, booking.UserID, booking.ScheduleID, booking.BookingReference,
		booking.JourneyDate, booking.SeatNumbers, booking.TotalSeats,
		booking.TotalFare, booking.Status, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	// 4. Insert passenger rows.
	for i := range passengers {
		passengers[i].ID = uuid.New().String()
		passengers[i].BookingID = booking.ID

		_, err = tx.Exec(`
			INSERT INTO booking_passengers (id, booking_id, name, age, gender, seat_number)
			VALUES (?, ?, ?, ?, ?, ?)`,
			passengers[i].ID, passengers[i].BookingID, passengers[i].Name,
			passengers[i].Age, passengers[i].Gender, passengers[i].SeatNumber,
		)
		if err != nil {
			return fmt.Errorf("failed to create passenger record: %w", err)
		}
	}
	booking.Passengers = passengers

	// 5. Insert payment row.
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.BookingID = booking.ID
	payment.CreatedAt = now

	_, err = tx.Exec(`
		INSERT INTO payments (id, booking_id, amount, method, transaction_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.BookingID, payment.Amount, payment.Method,
		payment.TransactionID, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CancelBooking flips a confirmed booking to cancelled and returns the seats
// to the schedule's counter in one transaction. Returns the updated booking.
func (r *BookingRepository) CancelBooking(
	bookingID string,
	reason *string,
	scheduleRepo *ScheduleRepository,
) (*models.Booking, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	booking, err := r.getByIDForUpdate(tx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		return nil, models.ErrAlreadyCancelled
	}

	seats, err := models.ParseSeatNumbers(booking.SeatNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored seat list: %w", err)
	}

	if err := scheduleRepo.ReleaseSeats(tx, booking.ScheduleID, len(seats)); err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = tx.Exec(`
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = ?, cancellation_reason = ?, updated_at = ?
		WHERE id = ?`,
		now, reason, now, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = reason
	booking.UpdatedAt = now

	return booking, nil
}

// getByIDForUpdate loads a booking row inside tx with a row lock
func (r *BookingRepository) getByIDForUpdate(tx *sqlx.Tx, bookingID string) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		SELECT id, user_id, schedule_id, booking_reference, journey_date,
		       seat_numbers, total_seats, total_fare, status,
		       cancelled_at, cancellation_reason, created_at, updated_at
		FROM bookings
		WHERE id = ?
		FOR UPDATE`

	err := tx.Get(booking, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

// GetByID retrieves a booking with its joined schedule, route and bus fields
func (r *BookingRepository) GetByID(bookingID string) (*models.BookingDetail, error) {
	detail := &models.BookingDetail{}
	query := `
		SELECT bk.id, bk.user_id, bk.schedule_id, bk.booking_reference,
		       bk.journey_date, bk.seat_numbers, bk.total_seats, bk.total_fare,
		       bk.status, bk.cancelled_at, bk.cancellation_reason,
		       bk.created_at, bk.updated_at,
		       s.departure_time, s.arrival_time, s.fare,
		       rt.origin, rt.destination,
		       b.bus_number, b.bus_type
		FROM bookings bk
		JOIN bus_schedules s ON s.id = bk.schedule_id
		JOIN routes rt ON rt.id = s.route_id
		JOIN buses b ON b.id = s.bus_id
		WHERE bk.id = ?`

	err := r.db.Get(detail, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	passengers := []models.Passenger{}
	err = r.db.Select(&passengers, `
		SELECT id, booking_id, name, age, gender, seat_number
		FROM booking_passengers
		WHERE booking_id = ?
		ORDER BY seat_number`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch passengers: %w", err)
	}
	detail.Passengers = passengers

	return detail, nil
}

// GetByUserID retrieves all bookings for a user, newest first
func (r *BookingRepository) GetByUserID(userID string, limit, offset int) ([]models.BookingDetail, error) {
	query := `
		SELECT bk.id, bk.user_id, bk.schedule_id, bk.booking_reference,
		       bk.journey_date, bk.seat_numbers, bk.total_seats, bk.total_fare,
		       bk.status, bk.cancelled_at, bk.cancellation_reason,
		       bk.created_at, bk.updated_at,
		       s.departure_time, s.arrival_time, s.fare,
		       rt.origin, rt.destination,
		       b.bus_number, b.bus_type
		FROM bookings bk
		JOIN bus_schedules s ON s.id = bk.schedule_id
		JOIN routes rt ON rt.id = s.route_id
		JOIN buses b ON b.id = s.bus_id
		WHERE bk.user_id = ?
		ORDER BY bk.created_at DESC
		LIMIT ? OFFSET ?`

	bookings := []models.BookingDetail{}
	if err := r.db.Select(&bookings, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return bookings, nil
}

// ListAll retrieves bookings across all users, newest first (admin)
func (r *BookingRepository) ListAll(limit, offset int) ([]models.BookingDetail, error) {
	query := `
		SELECT bk.id, bk.user_id, bk.schedule_id, bk.booking_reference,
		       bk.journey_date, bk.seat_numbers, bk.total_seats, bk.total_fare,
		       bk.status, bk.cancelled_at, bk.cancellation_reason,
		       bk.created_at, bk.updated_at,
		       s.departure_time, s.arrival_time, s.fare,
		       rt.origin, rt.destination,
		       b.bus_number, b.bus_type
		FROM bookings bk
		JOIN bus_schedules s ON s.id = bk.schedule_id
		JOIN routes rt ON rt.id = s.route_id
		JOIN buses b ON b.id = s.bus_id
		ORDER BY bk.created_at DESC
		LIMIT ? OFFSET ?`

	bookings := []models.BookingDetail{}
	if err := r.db.Select(&bookings, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// Stats aggregates booking and revenue counts for the admin dashboard
func (r *BookingRepository) Stats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := r.db.Get(stats, `
		SELECT
			COUNT(*) AS total_bookings,
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed_bookings,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_bookings,
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN total_fare ELSE 0 END), 0) AS total_revenue
		FROM bookings`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}

	err = r.db.Get(&stats.RefundedAmount, `
		SELECT COALESCE(SUM(amount), 0) FROM refunds WHERE status = 'processed'`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate refund stats: %w", err)
	}

	return stats, nil
}
