package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// FleetService handles bus and route administration
type FleetService struct {
	busRepo   *database.BusRepository
	routeRepo *database.RouteRepository
}

// NewFleetService creates a new fleet service
func NewFleetService(busRepo *database.BusRepository, routeRepo *database.RouteRepository) *FleetService {
	return &FleetService{
		busRepo:   busRepo,
		routeRepo: routeRepo,
	}
}

// CreateBus adds a bus to the fleet (admin)
func (s *FleetService) CreateBus(req *models.CreateBusRequest) (*models.Bus, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bus := &models.Bus{
		BusNumber: req.BusNumber,
		BusType:   req.BusType,
		Capacity:  req.Capacity,
		Status:    models.BusStatusActive,
	}

	if err := s.busRepo.Create(bus); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bus_id":     bus.ID,
		"bus_number": bus.BusNumber,
		"capacity":   bus.Capacity,
	}).Info("Bus created")

	return bus, nil
}

// ListBuses retrieves the fleet
func (s *FleetService) ListBuses() ([]models.Bus, error) {
	return s.busRepo.List()
}

// UpdateBusStatus changes a bus status (admin)
func (s *FleetService) UpdateBusStatus(busID string, status models.BusStatus) error {
	return s.busRepo.UpdateStatus(busID, status)
}

// CreateRoute adds a route (admin)
func (s *FleetService) CreateRoute(req *models.CreateRouteRequest) (*models.Route, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	route := &models.Route{
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKM:  req.DistanceKM,
	}

	if err := s.routeRepo.Create(route); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"route_id":    route.ID,
		"origin":      route.Origin,
		"destination": route.Destination,
	}).Info("Route created")

	return route, nil
}

// ListRoutes retrieves all routes
func (s *FleetService) ListRoutes() ([]models.Route, error) {
	return s.routeRepo.List()
}
