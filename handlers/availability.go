package handlers

import (
	"net/http"

	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailabilityHandler returns the normalized weekly schedule and its
// derived metrics for one specialist. The raw persisted value may be
// malformed or written under an old schema generation; normalization
// never fails, so the only error path here is an unknown specialist.
func (h *SpecialistHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	availability, err := h.Service.GetWeeklyAvailability(id)
	if err != nil {
		logger.Error("Failed to resolve weekly availability",
			zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Specialist not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, availability)
}

// UpdateAvailabilityHandler replaces a specialist's raw weekly schedule.
// The body is accepted as-is (object, JSON-encoded string, or null) and
// echoed back in normalized form so clients can render the result
// immediately.
func (h *SpecialistHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var rawSchedule any
	if err := c.ShouldBindJSON(&rawSchedule); err != nil {
		logger.Error("Invalid availability payload", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	availability, err := h.Service.UpdateAvailability(id, rawSchedule)
	if err != nil {
		logger.Error("Failed to update availability",
			zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, availability)
}

// HealthHandler reports the latest stored health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
