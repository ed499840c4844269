package models

import (
	"fmt"
	"time"
)

// BusStatus represents the operational state of a bus
type BusStatus string

const (
	BusStatusActive      BusStatus = "active"
	BusStatusMaintenance BusStatus = "maintenance"
	BusStatusRetired     BusStatus = "retired"
)

// Bus represents a vehicle in the fleet. Capacity is the upper bound for a
// schedule's available seats.
type Bus struct {
	ID        string    `json:"id" db:"id"`
	BusNumber string    `json:"bus_number" db:"bus_number"`
	BusType   string    `json:"bus_type" db:"bus_type"`
	Capacity  int       `json:"capacity" db:"capacity"`
	Status    BusStatus `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBusRequest represents an admin request to register a bus
type CreateBusRequest struct {
	BusNumber string `json:"bus_number" binding:"required"`
	BusType   string `json:"bus_type" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required"`
}

// Validate checks the bus request fields
func (r *CreateBusRequest) Validate() error {
	if r.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

// Route represents a fixed origin/destination pair served by schedules
type Route struct {
	ID          string    `json:"id" db:"id"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	DistanceKM  float64   `json:"distance_km" db:"distance_km"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRouteRequest represents an admin request to add a route
type CreateRouteRequest struct {
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	DistanceKM  float64 `json:"distance_km" binding:"required"`
}

// Validate checks the route request fields
func (r *CreateRouteRequest) Validate() error {
	if r.Origin == r.Destination {
		return fmt.Errorf("%w: origin and destination must differ", ErrInvalidInput)
	}
	if r.DistanceKM <= 0 {
		return fmt.Errorf("%w: distance_km must be positive", ErrInvalidInput)
	}
	return nil
}
