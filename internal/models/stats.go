package models

// DashboardStats aggregates platform-wide booking figures for the admin dashboard
type DashboardStats struct {
	TotalBookings     int     `json:"total_bookings" db:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings" db:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings" db:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
	RefundedAmount    float64 `json:"refunded_amount" db:"refunded_amount"`
}
