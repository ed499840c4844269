package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newMockDB wraps a sqlmock connection in the MySQLDB adapter so repositories
// run against it unchanged, transactions included.
func newMockDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()

	rawDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { rawDB.Close() })

	return &MySQLDB{DB: sqlx.NewDb(rawDB, "sqlmock")}, mock
}

var scheduleColumns = []string{
	"id", "bus_id", "route_id", "driver_name", "departure_time", "arrival_time",
	"fare", "available_seats", "status", "created_at", "updated_at",
}

var bookingColumns = []string{
	"id", "user_id", "schedule_id", "booking_reference", "journey_date",
	"seat_numbers", "total_seats", "total_fare", "status",
	"cancelled_at", "cancellation_reason", "created_at", "updated_at",
}
