package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/services"
)

// ScheduleHandler handles schedule search and administration endpoints
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Search finds schedules by origin, destination and travel date
// @Summary Search schedules
// @Tags Schedules
// @Produce json
// @Param origin query string false "Origin city"
// @Param destination query string false "Destination city"
// @Param date query string false "Travel date (YYYY-MM-DD)"
// @Success 200 {array} models.ScheduleDetail
// @Router /api/v1/schedules [get]
func (h *ScheduleHandler) Search(c *gin.Context) {
	var req models.SearchSchedulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	schedules, err := h.scheduleService.Search(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules, "count": len(schedules)})
}

// GetSchedule retrieves one schedule with bus and route details
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.scheduleService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// CreateSchedule adds a new schedule (admin)
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// DeleteSchedule removes a schedule with no confirmed bookings (admin)
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	if err := h.scheduleService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// UpdateScheduleStatus changes a schedule's status (admin)
func (h *ScheduleHandler) UpdateScheduleStatus(c *gin.Context) {
	var req struct {
		Status models.ScheduleStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	switch req.Status {
	case models.ScheduleStatusActive, models.ScheduleStatusCancelled, models.ScheduleStatusCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	if err := h.scheduleService.UpdateStatus(c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule status updated"})
}
