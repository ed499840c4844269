package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundCalculator_Calculate(t *testing.T) {
	calc := NewRefundCalculator()
	departure := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		totalFare      float64
		cancelledAt    time.Time
		wantAmount     float64
		wantPercentage int
	}{
		{
			name:           "more than 24 hours before departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(-48 * time.Hour),
			wantAmount:     97.50,
			wantPercentage: 100,
		},
		{
			name:           "exactly 24 hours before departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(-24 * time.Hour),
			wantAmount:     97.50,
			wantPercentage: 100,
		},
		{
			name:           "just under 24 hours before departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(-24*time.Hour + time.Minute),
			wantAmount:     48.75,
			wantPercentage: 50,
		},
		{
			name:           "exactly 2 hours before departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(-2 * time.Hour),
			wantAmount:     48.75,
			wantPercentage: 50,
		},
		{
			name:           "just under 2 hours before departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(-2*time.Hour + time.Minute),
			wantAmount:     0,
			wantPercentage: 0,
		},
		{
			name:           "after departure",
			totalFare:      100.00,
			cancelledAt:    departure.Add(time.Hour),
			wantAmount:     0,
			wantPercentage: 0,
		},
		{
			name:           "half refund rounds to cents",
			totalFare:      75.25,
			cancelledAt:    departure.Add(-12 * time.Hour),
			wantAmount:     36.38,
			wantPercentage: 50,
		},
		{
			name:           "full refund on small fare",
			totalFare:      10.00,
			cancelledAt:    departure.Add(-72 * time.Hour),
			wantAmount:     7.50,
			wantPercentage: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := calc.Calculate(tt.totalFare, departure, tt.cancelledAt)
			assert.Equal(t, tt.wantAmount, quote.Amount)
			assert.Equal(t, tt.wantPercentage, quote.Percentage)
			assert.NotEmpty(t, quote.Reason)
		})
	}
}
