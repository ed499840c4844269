package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/middleware"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
	"github.com/Supriya-gouda/ZenBus-sub001/internal/services"
	"github.com/Supriya-gouda/ZenBus-sub001/pkg/pdf"
)

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	bookingService *services.BookingService
	auditService   *services.AuditService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *services.BookingService, auditService *services.AuditService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		auditService:   auditService,
	}
}

// CreateBooking reserves seats on a schedule
// @Summary Create a new booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body models.CreateBookingRequest true "Booking request"
// @Success 201 {object} models.BookingDetail
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Insufficient seats"
// @Security BearerAuth
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detail, err := h.bookingService.CreateBooking(userCtx.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.auditService.LogBookingCreated(detail.ID, userCtx.UserID, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusCreated, gin.H{"booking": detail})
}

// CancelBooking cancels a booking and records the refund owed
// @Summary Cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body models.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} models.CancellationResult
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 409 {object} map[string]interface{} "Already cancelled or window closed"
// @Security BearerAuth
// @Router /api/v1/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	result, err := h.bookingService.CancelBooking(userCtx.UserID, userCtx.IsAdmin(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.auditService.LogBookingCancelled(result.BookingID, userCtx.UserID, c.ClientIP(), c.Request.UserAgent())
	if result.Refund != nil {
		h.auditService.LogRefundRecorded(result.BookingID, userCtx.UserID, c.ClientIP(), c.Request.UserAgent())
	}

	c.JSON(http.StatusOK, gin.H{"cancellation": result})
}

// GetBooking retrieves one booking for its owner or an admin
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.bookingService.GetBooking(userCtx.UserID, userCtx.IsAdmin(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// ListMyBookings retrieves the caller's bookings, newest first
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.bookingService.GetUserBookings(userCtx.UserID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// PreviewRefund quotes the refund a cancellation would produce right now
func (h *BookingHandler) PreviewRefund(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	preview, err := h.bookingService.PreviewRefund(userCtx.UserID, userCtx.IsAdmin(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"refund": preview})
}

// DownloadTicket renders the e-ticket PDF for a confirmed booking
func (h *BookingHandler) DownloadTicket(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.bookingService.GetBooking(userCtx.UserID, userCtx.IsAdmin(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	data, filename, err := pdf.BuildTicket(detail)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
