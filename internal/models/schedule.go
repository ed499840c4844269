package models

import (
	"fmt"
	"time"
)

// ScheduleStatus represents whether a schedule accepts bookings
type ScheduleStatus string

const (
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
)

// Schedule represents a bus running a route at a specific departure time,
// with its own seat inventory.
type Schedule struct {
	ID             string         `json:"id" db:"id"`
	BusID          string         `json:"bus_id" db:"bus_id"`
	RouteID        string         `json:"route_id" db:"route_id"`
	DriverName     *string        `json:"driver_name,omitempty" db:"driver_name"`
	DepartureTime  time.Time      `json:"departure_time" db:"departure_time"`
	ArrivalTime    time.Time      `json:"arrival_time" db:"arrival_time"`
	Fare           float64        `json:"fare" db:"fare"`
	AvailableSeats int            `json:"available_seats" db:"available_seats"`
	Status         ScheduleStatus `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// ScheduleDetail is a schedule joined with its bus and route fields
type ScheduleDetail struct {
	Schedule
	BusNumber   string  `json:"bus_number" db:"bus_number"`
	BusType     string  `json:"bus_type" db:"bus_type"`
	Capacity    int     `json:"capacity" db:"capacity"`
	Origin      string  `json:"origin" db:"origin"`
	Destination string  `json:"destination" db:"destination"`
	DistanceKM  float64 `json:"distance_km" db:"distance_km"`
}

// CreateScheduleRequest represents an admin request to add a schedule
type CreateScheduleRequest struct {
	BusID         string  `json:"bus_id" binding:"required"`
	RouteID       string  `json:"route_id" binding:"required"`
	DriverName    *string `json:"driver_name,omitempty"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	ArrivalTime   string  `json:"arrival_time" binding:"required"`
	Fare          float64 `json:"fare" binding:"required"`
}

// Validate checks the schedule request fields
func (r *CreateScheduleRequest) Validate() error {
	if r.Fare <= 0 {
		return fmt.Errorf("%w: fare must be positive", ErrInvalidInput)
	}
	departure, err := time.Parse(time.RFC3339, r.DepartureTime)
	if err != nil {
		return fmt.Errorf("%w: departure_time must be RFC3339", ErrInvalidInput)
	}
	arrival, err := time.Parse(time.RFC3339, r.ArrivalTime)
	if err != nil {
		return fmt.Errorf("%w: arrival_time must be RFC3339", ErrInvalidInput)
	}
	if !arrival.After(departure) {
		return fmt.Errorf("%w: arrival_time must be after departure_time", ErrInvalidInput)
	}
	return nil
}

// DepartureTimeParsed returns the parsed departure time. Call Validate first.
func (r *CreateScheduleRequest) DepartureTimeParsed() time.Time {
	t, _ := time.Parse(time.RFC3339, r.DepartureTime)
	return t
}

// ArrivalTimeParsed returns the parsed arrival time. Call Validate first.
func (r *CreateScheduleRequest) ArrivalTimeParsed() time.Time {
	t, _ := time.Parse(time.RFC3339, r.ArrivalTime)
	return t
}

// SearchSchedulesRequest represents a public schedule search
type SearchSchedulesRequest struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	Date        string `form:"date"`
}
