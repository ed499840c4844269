package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/database"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/middleware"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/services"
)

// AdminHandler handles admin-only booking, refund and fleet endpoints
type AdminHandler struct {
	bookingService *services.BookingService
	fleetService   *services.FleetService
	auditService   *services.AuditService
	bookingRepo    *database.BookingRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	bookingService *services.BookingService,
	fleetService *services.FleetService,
	auditService *services.AuditService,
	bookingRepo *database.BookingRepository,
) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
		fleetService:   fleetService,
		auditService:   auditService,
		bookingRepo:    bookingRepo,
	}
}

// ListBookings retrieves bookings across all users
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.bookingService.ListBookings(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// ProcessRefund records the gateway payout for a pending refund
func (h *AdminHandler) ProcessRefund(c *gin.Context) {
	var req struct {
		TransactionID string `json:"transaction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.bookingService.ProcessRefund(c.Param("id"), req.TransactionID); err != nil {
		respondError(c, err)
		return
	}

	if userCtx, ok := middleware.GetUserContext(c); ok {
		h.auditService.LogRefundProcessed(c.Param("id"), userCtx.UserID, c.ClientIP(), c.Request.UserAgent())
	}

	c.JSON(http.StatusOK, gin.H{"message": "Refund processed"})
}

// EnsureRefund backfills the refund record for a cancelled booking whose
// refund recording failed at cancellation time
func (h *AdminHandler) EnsureRefund(c *gin.Context) {
	refund, err := h.bookingService.EnsureRefund(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"refund": refund})
}

// DashboardStats aggregates booking and revenue figures
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.bookingRepo.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// BookingAuditTrail retrieves the audit entries for one booking
func (h *AdminHandler) BookingAuditTrail(c *gin.Context) {
	trail, err := h.auditService.Trail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"audit_trail": trail, "count": len(trail)})
}

// CreateBus registers a bus in the fleet
func (h *AdminHandler) CreateBus(c *gin.Context) {
	var req models.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	bus, err := h.fleetService.CreateBus(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

// ListBuses retrieves the fleet
func (h *AdminHandler) ListBuses(c *gin.Context) {
	buses, err := h.fleetService.ListBuses()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"buses": buses, "count": len(buses)})
}

// UpdateBusStatus changes a bus status
func (h *AdminHandler) UpdateBusStatus(c *gin.Context) {
	var req struct {
		Status models.BusStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	switch req.Status {
	case models.BusStatusActive, models.BusStatusMaintenance, models.BusStatusRetired:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	if err := h.fleetService.UpdateBusStatus(c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bus status updated"})
}

// CreateRoute adds a route
func (h *AdminHandler) CreateRoute(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	route, err := h.fleetService.CreateRoute(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route": route})
}

// ListRoutes retrieves all routes
func (h *AdminHandler) ListRoutes(c *gin.Context) {
	routes, err := h.fleetService.ListRoutes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}
