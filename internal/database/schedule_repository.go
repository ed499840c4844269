package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// ScheduleRepository handles database operations for the bus_schedules table,
// including the per-schedule available-seat counter.
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new schedule. The available-seat counter starts at the
// bus's capacity.
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}

	var capacity int
	err := r.db.Get(&capacity, `SELECT capacity FROM buses WHERE id = ?`, schedule.BusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrBusNotFound
		}
		return fmt.Errorf("failed to fetch bus capacity: %w", err)
	}
	schedule.AvailableSeats = capacity

	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	if schedule.Status == "" {
		schedule.Status = models.ScheduleStatusActive
	}

	query := `
		INSERT INTO bus_schedules (
			id, bus_id, route_id, driver_name, departure_time, arrival_time,
			fare, available_seats, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.Exec(query,
		schedule.ID, schedule.BusID, schedule.RouteID, schedule.DriverName,
		schedule.DepartureTime, schedule.ArrivalTime,
		schedule.Fare, schedule.AvailableSeats, schedule.Status,
		schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return nil
}

// GetByID retrieves a schedule with its joined bus and route fields
func (r *ScheduleRepository) GetByID(scheduleID string) (*models.ScheduleDetail, error) {
	detail := &models.ScheduleDetail{}
	query := `
		SELECT s.id, s.bus_id, s.route_id, s.driver_name,
		       s.departure_time, s.arrival_time, s.fare, s.available_seats,
		       s.status, s.created_at, s.updated_at,
		       b.bus_number, b.bus_type, b.capacity,
		       rt.origin, rt.destination, rt.distance_km
		FROM bus_schedules s
		JOIN buses b ON b.id = s.bus_id
		JOIN routes rt ON rt.id = s.route_id
		WHERE s.id = ?`

	err := r.db.Get(detail, query, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	return detail, nil
}

// Search lists active schedules matching the optional origin, destination
// and departure date filters.
func (r *ScheduleRepository) Search(req models.SearchSchedulesRequest) ([]models.ScheduleDetail, error) {
	query := `
		SELECT s.id, s.bus_id, s.route_id, s.driver_name,
		       s.departure_time, s.arrival_time, s.fare, s.available_seats,
		       s.status, s.created_at, s.updated_at,
		       b.bus_number, b.bus_type, b.capacity,
		       rt.origin, rt.destination, rt.distance_km
		FROM bus_schedules s
		JOIN buses b ON b.id = s.bus_id
		JOIN routes rt ON rt.id = s.route_id
		WHERE s.status = 'active'`
	args := []interface{}{}

	if req.Origin != "" {
		query += ` AND rt.origin = ?`
		args = append(args, req.Origin)
	}
	if req.Destination != "" {
		query += ` AND rt.destination = ?`
		args = append(args, req.Destination)
	}
	if req.Date != "" {
		query += ` AND DATE(s.departure_time) = ?`
		args = append(args, req.Date)
	}
	query += ` ORDER BY s.departure_time`

	schedules := []models.ScheduleDetail{}
	if err := r.db.Select(&schedules, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search schedules: %w", err)
	}

	return schedules, nil
}

// GetByIDForUpdate loads a schedule row inside tx with a row lock. Used by
// the booking transaction so concurrent reservations serialize on the row.
func (r *ScheduleRepository) GetByIDForUpdate(tx *sqlx.Tx, scheduleID string) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	query := `
		SELECT id, bus_id, route_id, driver_name, departure_time, arrival_time,
		       fare, available_seats, status, created_at, updated_at
		FROM bus_schedules
		WHERE id = ?
		FOR UPDATE`

	err := tx.Get(schedule, query, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to lock schedule: %w", err)
	}

	return schedule, nil
}

// ReserveSeats decrements the available-seat counter inside tx. The guard on
// available_seats makes the check-and-decrement atomic even without the row
// lock; zero affected rows means not enough seats remain.
func (r *ScheduleRepository) ReserveSeats(tx *sqlx.Tx, scheduleID string, seatCount int) error {
	result, err := tx.Exec(`
		UPDATE bus_schedules
		SET available_seats = available_seats - ?, updated_at = NOW()
		WHERE id = ? AND available_seats >= ?`,
		seatCount, scheduleID, seatCount)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check reservation result: %w", err)
	}
	if rows == 0 {
		return models.ErrInsufficientSeats
	}

	return nil
}

// ReleaseSeats increments the available-seat counter inside tx. The count
// comes from the cancelled booking's stored seat list; no capacity clamp is
// applied here.
func (r *ScheduleRepository) ReleaseSeats(tx *sqlx.Tx, scheduleID string, seatCount int) error {
	result, err := tx.Exec(`
		UPDATE bus_schedules
		SET available_seats = available_seats + ?, updated_at = NOW()
		WHERE id = ?`,
		seatCount, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check release result: %w", err)
	}
	if rows == 0 {
		return models.ErrScheduleNotFound
	}

	return nil
}

// Delete removes a schedule. Rejected while confirmed bookings still
// reference it.
func (r *ScheduleRepository) Delete(scheduleID string) error {
	var confirmed int
	err := r.db.Get(&confirmed, `
		SELECT COUNT(*) FROM bookings
		WHERE schedule_id = ? AND status = 'confirmed'`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	if confirmed > 0 {
		return models.ErrScheduleInUse
	}

	result, err := r.db.Exec(`DELETE FROM bus_schedules WHERE id = ?`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return models.ErrScheduleNotFound
	}

	return nil
}

// UpdateStatus sets a schedule's status
func (r *ScheduleRepository) UpdateStatus(scheduleID string, status models.ScheduleStatus) error {
	result, err := r.db.Exec(`
		UPDATE bus_schedules SET status = ?, updated_at = NOW() WHERE id = ?`,
		status, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to update schedule status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return models.ErrScheduleNotFound
	}

	return nil
}
