package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// ScheduleService handles trip schedule search and administration
type ScheduleService struct {
	scheduleRepo *database.ScheduleRepository
	routeRepo    *database.RouteRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleRepo *database.ScheduleRepository, routeRepo *database.RouteRepository) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		routeRepo:    routeRepo,
	}
}

// Search finds schedules matching origin, destination and travel date
func (s *ScheduleService) Search(req *models.SearchSchedulesRequest) ([]models.ScheduleDetail, error) {
	return s.scheduleRepo.Search(*req)
}

// GetByID retrieves one schedule with its route and bus details
func (s *ScheduleService) GetByID(scheduleID string) (*models.ScheduleDetail, error) {
	return s.scheduleRepo.GetByID(scheduleID)
}

// Create adds a schedule after validating its route exists (admin). The bus
// is validated inside the repository when seeding the seat counter.
func (s *ScheduleService) Create(req *models.CreateScheduleRequest) (*models.ScheduleDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.routeRepo.GetByID(req.RouteID); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		BusID:         req.BusID,
		RouteID:       req.RouteID,
		DriverName:    req.DriverName,
		DepartureTime: req.DepartureTimeParsed(),
		ArrivalTime:   req.ArrivalTimeParsed(),
		Fare:          req.Fare,
		Status:        models.ScheduleStatusActive,
	}

	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"schedule_id": schedule.ID,
		"bus_id":      schedule.BusID,
		"route_id":    schedule.RouteID,
		"departure":   schedule.DepartureTime.Format(time.RFC3339),
	}).Info("Schedule created")

	return s.scheduleRepo.GetByID(schedule.ID)
}

// Delete removes a schedule with no confirmed bookings (admin)
func (s *ScheduleService) Delete(scheduleID string) error {
	return s.scheduleRepo.Delete(scheduleID)
}

// UpdateStatus changes a schedule's status (admin)
func (s *ScheduleService) UpdateStatus(scheduleID string, status models.ScheduleStatus) error {
	return s.scheduleRepo.UpdateStatus(scheduleID, status)
}
