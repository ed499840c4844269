package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

var refundColumns = []string{
	"id", "booking_id", "payment_id", "amount", "percentage", "reason",
	"status", "refund_transaction_id", "processed_at", "created_at",
}

func TestCreateRefund(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO refunds`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		refund := &models.Refund{
			BookingID:  "booking-1",
			PaymentID:  "payment-1",
			Amount:     48.75,
			Percentage: 50,
			Reason:     "within 24 hours of departure",
		}

		err := repo.Create(refund)
		require.NoError(t, err)
		assert.NotEmpty(t, refund.ID)
		assert.Equal(t, models.RefundStatusPending, refund.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetActiveRefundByBookingID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRepository(db)

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM refunds`).
			WithArgs("booking-1").
			WillReturnRows(sqlmock.NewRows(refundColumns).AddRow(
				"refund-1", "booking-1", "payment-1", 48.75, 50,
				"within 24 hours of departure", "pending", nil, nil, now,
			))

		refund, err := repo.GetActiveByBookingID("booking-1")
		require.NoError(t, err)
		require.NotNil(t, refund)
		assert.Equal(t, 48.75, refund.Amount)
		assert.Equal(t, 50, refund.Percentage)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("None Exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM refunds`).
			WithArgs("booking-2").
			WillReturnRows(sqlmock.NewRows(refundColumns))

		refund, err := repo.GetActiveByBookingID("booking-2")
		require.NoError(t, err)
		assert.Nil(t, refund)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkRefundProcessed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefundRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE refunds`).
			WithArgs("RFND-100", sqlmock.AnyArg(), "refund-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkProcessed("refund-1", "RFND-100")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Pending", func(t *testing.T) {
		mock.ExpectExec(`UPDATE refunds`).
			WithArgs("RFND-100", sqlmock.AnyArg(), "refund-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkProcessed("refund-1", "RFND-100")
		assert.ErrorIs(t, err, models.ErrAlreadyRefunded)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
