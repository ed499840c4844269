package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

func testBooking() *models.Booking {
	return &models.Booking{
		UserID:           "user-1",
		ScheduleID:       "sched-1",
		BookingReference: "ZB-20260915-A1B2C3",
		JourneyDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		SeatNumbers:      "4,5",
		TotalSeats:       2,
		TotalFare:        90.00,
	}
}

func testPayment() *models.Payment {
	return &models.Payment{
		Amount:        90.00,
		Method:        "card",
		TransactionID: "TXN-test",
		Status:        models.PaymentStatusSuccess,
	}
}

func expectScheduleLock(mock sqlmock.Sqlmock, availableSeats int, status string) {
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM bus_schedules WHERE id = \? FOR UPDATE`).
		WithArgs("sched-1").
		WillReturnRows(sqlmock.NewRows(scheduleColumns).AddRow(
			"sched-1", "bus-1", "route-1", nil, now.Add(48*time.Hour), now.Add(54*time.Hour),
			45.00, availableSeats, status, now, now,
		))
}

func TestCreateBooking(t *testing.T) {
	db, mock := newMockDB(t)
	scheduleRepo := NewScheduleRepository(db)
	repo := NewBookingRepository(db)

	passengers := []models.Passenger{
		{Name: "Asha Rao", Age: 31, Gender: "female", SeatNumber: 4},
		{Name: "Vikram Rao", Age: 34, Gender: "male", SeatNumber: 5},
	}

	t.Run("Success", func(t *testing.T) {
		booking := testBooking()

		mock.ExpectBegin()
		expectScheduleLock(mock, 30, "active")
		mock.ExpectExec(`UPDATE bus_schedules`).
			WithArgs(2, "sched-1", 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO booking_passengers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO booking_passengers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO payments`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateBooking(booking, passengers, testPayment(), scheduleRepo)
		require.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient Seats Rolls Back", func(t *testing.T) {
		booking := testBooking()

		mock.ExpectBegin()
		expectScheduleLock(mock, 1, "active")
		mock.ExpectExec(`UPDATE bus_schedules`).
			WithArgs(2, "sched-1", 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateBooking(booking, passengers, testPayment(), scheduleRepo)
		assert.ErrorIs(t, err, models.ErrInsufficientSeats)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Schedule Not Found Rolls Back", func(t *testing.T) {
		booking := testBooking()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM bus_schedules WHERE id = \? FOR UPDATE`).
			WithArgs("sched-1").
			WillReturnRows(sqlmock.NewRows(scheduleColumns))
		mock.ExpectRollback()

		err := repo.CreateBooking(booking, passengers, testPayment(), scheduleRepo)
		assert.ErrorIs(t, err, models.ErrScheduleNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inactive Schedule Rejected", func(t *testing.T) {
		booking := testBooking()

		mock.ExpectBegin()
		expectScheduleLock(mock, 30, "cancelled")
		mock.ExpectRollback()

		err := repo.CreateBooking(booking, passengers, testPayment(), scheduleRepo)
		assert.ErrorIs(t, err, models.ErrScheduleNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Payment Insert Failure Rolls Back", func(t *testing.T) {
		booking := testBooking()

		mock.ExpectBegin()
		expectScheduleLock(mock, 30, "active")
		mock.ExpectExec(`UPDATE bus_schedules`).
			WithArgs(2, "sched-1", 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO bookings`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO booking_passengers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO booking_passengers`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO payments`).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		err := repo.CreateBooking(booking, passengers, testPayment(), scheduleRepo)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create payment")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelBooking(t *testing.T) {
	db, mock := newMockDB(t)
	scheduleRepo := NewScheduleRepository(db)
	repo := NewBookingRepository(db)

	expectBookingLock := func(status string) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \? FOR UPDATE`).
			WithArgs("booking-1").
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
				"booking-1", "user-1", "sched-1", "ZB-20260915-A1B2C3",
				time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				"4,5", 2, 90.00, status, nil, nil, now, now,
			))
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		expectBookingLock("confirmed")
		mock.ExpectExec(`UPDATE bus_schedules`).
			WithArgs(2, "sched-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE bookings`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		reason := "change of plans"
		booking, err := repo.CancelBooking("booking-1", &reason, scheduleRepo)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, booking.Status)
		require.NotNil(t, booking.CancelledAt)
		require.NotNil(t, booking.CancellationReason)
		assert.Equal(t, reason, *booking.CancellationReason)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		mock.ExpectBegin()
		expectBookingLock("cancelled")
		mock.ExpectRollback()

		booking, err := repo.CancelBooking("booking-1", nil, scheduleRepo)
		assert.ErrorIs(t, err, models.ErrAlreadyCancelled)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \? FOR UPDATE`).
			WithArgs("booking-gone").
			WillReturnRows(sqlmock.NewRows(bookingColumns))
		mock.ExpectRollback()

		booking, err := repo.CancelBooking("booking-gone", nil, scheduleRepo)
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Seat Release Failure Rolls Back", func(t *testing.T) {
		mock.ExpectBegin()
		expectBookingLock("confirmed")
		mock.ExpectExec(`UPDATE bus_schedules`).
			WithArgs(2, "sched-1").
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		booking, err := repo.CancelBooking("booking-1", nil, scheduleRepo)
		assert.Error(t, err)
		assert.Nil(t, booking)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGenerateBookingReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	t.Run("Unique On First Try", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		ref, err := repo.GenerateBookingReference()
		require.NoError(t, err)
		assert.Regexp(t, `^ZB-\d{8}-[0-9A-F]{6}$`, ref)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Retries On Collision", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		ref, err := repo.GenerateBookingReference()
		require.NoError(t, err)
		assert.NotEmpty(t, ref)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
