package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// respondError maps domain errors to HTTP statuses. Anything unmapped is a
// 500 with a generic body; the real error goes to the log only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrScheduleNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrBusNotFound),
		errors.Is(err, models.ErrRouteNotFound),
		errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientSeats),
		errors.Is(err, models.ErrAlreadyCancelled),
		errors.Is(err, models.ErrAlreadyRefunded),
		errors.Is(err, models.ErrScheduleInUse),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrCancellationClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have access to this resource"})
	default:
		logrus.WithError(err).Error("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
