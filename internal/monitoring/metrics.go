package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts committed bookings
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zenbus_bookings_created_total",
		Help: "Total number of bookings successfully created",
	})

	// BookingsCancelled counts committed cancellations
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zenbus_bookings_cancelled_total",
		Help: "Total number of bookings cancelled",
	})

	// RefundsRecorded counts refund ledger writes by outcome status
	RefundsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zenbus_refunds_total",
		Help: "Total number of refund records written, by status",
	}, []string{"status"})

	// BookingFailures counts create attempts rejected inside the transaction
	BookingFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zenbus_booking_failures_total",
		Help: "Total number of failed booking attempts, by cause",
	}, []string{"cause"})
)
