package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// RouteRepository handles route database operations
type RouteRepository struct {
	db DB
}

// NewRouteRepository creates a new RouteRepository
func NewRouteRepository(db DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create inserts a new route
func (r *RouteRepository) Create(route *models.Route) error {
	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	now := time.Now()
	route.CreatedAt = now
	route.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO routes (id, origin, destination, distance_km, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		route.ID, route.Origin, route.Destination, route.DistanceKM,
		route.CreatedAt, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

// GetByID retrieves a route by its ID
func (r *RouteRepository) GetByID(routeID string) (*models.Route, error) {
	route := &models.Route{}
	query := `
		SELECT id, origin, destination, distance_km, created_at, updated_at
		FROM routes
		WHERE id = ?`

	err := r.db.Get(route, query, routeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}

	return route, nil
}

// List retrieves all routes
func (r *RouteRepository) List() ([]models.Route, error) {
	routes := []models.Route{}
	query := `
		SELECT id, origin, destination, distance_km, created_at, updated_at
		FROM routes
		ORDER BY origin, destination`

	if err := r.db.Select(&routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	return routes, nil
}
