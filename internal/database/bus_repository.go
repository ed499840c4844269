package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// BusRepository handles bus fleet database operations
type BusRepository struct {
	db DB
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db DB) *BusRepository {
	return &BusRepository{db: db}
}

// Create inserts a new bus
func (r *BusRepository) Create(bus *models.Bus) error {
	if bus.ID == "" {
		bus.ID = uuid.New().String()
	}
	now := time.Now()
	bus.CreatedAt = now
	bus.UpdatedAt = now
	if bus.Status == "" {
		bus.Status = models.BusStatusActive
	}

	_, err := r.db.Exec(`
		INSERT INTO buses (id, bus_number, bus_type, capacity, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		bus.ID, bus.BusNumber, bus.BusType, bus.Capacity, bus.Status,
		bus.CreatedAt, bus.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bus: %w", err)
	}

	return nil
}

// GetByID retrieves a bus by its ID
func (r *BusRepository) GetByID(busID string) (*models.Bus, error) {
	bus := &models.Bus{}
	query := `
		SELECT id, bus_number, bus_type, capacity, status, created_at, updated_at
		FROM buses
		WHERE id = ?`

	err := r.db.Get(bus, query, busID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBusNotFound
		}
		return nil, fmt.Errorf("failed to fetch bus: %w", err)
	}

	return bus, nil
}

// List retrieves all buses
func (r *BusRepository) List() ([]models.Bus, error) {
	buses := []models.Bus{}
	query := `
		SELECT id, bus_number, bus_type, capacity, status, created_at, updated_at
		FROM buses
		ORDER BY bus_number`

	if err := r.db.Select(&buses, query); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}

	return buses, nil
}

// UpdateStatus changes a bus status
func (r *BusRepository) UpdateStatus(busID string, status models.BusStatus) error {
	result, err := r.db.Exec(`
		UPDATE buses SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), busID)
	if err != nil {
		return fmt.Errorf("failed to update bus status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrBusNotFound
	}

	return nil
}
