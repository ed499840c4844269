package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cancellation policy tiers, measured from cancellation time to departure.
const (
	noRefundWindow   = 2 * time.Hour
	halfRefundWindow = 24 * time.Hour
)

// serviceFee is the flat booking fee retained on every refund.
var serviceFee = decimal.NewFromFloat(2.50)

// RefundQuote is the outcome of applying the cancellation policy to a booking
type RefundQuote struct {
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Reason     string  `json:"reason"`
}

// RefundCalculator applies the tiered cancellation policy
type RefundCalculator struct{}

// NewRefundCalculator creates a new RefundCalculator
func NewRefundCalculator() *RefundCalculator {
	return &RefundCalculator{}
}

// Calculate returns the refund owed when a booking with the given total fare
// is cancelled at cancelledAt for a departure at departureTime. The service
// fee is deducted from the fare before the tier percentage is applied.
//
// Tiers: under 2 hours to departure nothing is refunded, under 24 hours half
// the base fare, otherwise the full base fare.
func (c *RefundCalculator) Calculate(totalFare float64, departureTime, cancelledAt time.Time) RefundQuote {
	untilDeparture := departureTime.Sub(cancelledAt)

	if untilDeparture < noRefundWindow {
		return RefundQuote{
			Amount:     0,
			Percentage: 0,
			Reason:     "too close to departure",
		}
	}

	baseFare := decimal.NewFromFloat(totalFare).Sub(serviceFee)

	if untilDeparture < halfRefundWindow {
		amount := baseFare.Div(decimal.NewFromInt(2)).Round(2)
		value, _ := amount.Float64()
		return RefundQuote{
			Amount:     value,
			Percentage: 50,
			Reason:     "within 24 hours of departure",
		}
	}

	value, _ := baseFare.Round(2).Float64()
	return RefundQuote{
		Amount:     value,
		Percentage: 100,
		Reason:     "more than 24 hours before departure",
	}
}
