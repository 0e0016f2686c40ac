package handlers

import (
	"net/http"

	"mindwell/models"
	"mindwell/services/specialist"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpecialistHandler exposes specialist profile endpoints.
type SpecialistHandler struct {
	Service specialist.SpecialistService
}

// NewSpecialistHandler creates a SpecialistHandler backed by the given service.
func NewSpecialistHandler(svc specialist.SpecialistService) *SpecialistHandler {
	return &SpecialistHandler{Service: svc}
}

// ListSpecialistsHandler returns all active specialists; pass ?all=true
// to include paused profiles.
func (h *SpecialistHandler) ListSpecialistsHandler(c *gin.Context) {
	logger := getLogger(c)

	var (
		specialists []models.Specialist
		err         error
	)
	if c.Query("all") == "true" {
		specialists, err = h.Service.GetAllSpecialists()
	} else {
		specialists, err = h.Service.GetActiveSpecialists()
	}
	if err != nil {
		logger.Error("Failed to retrieve specialists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get specialists", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialists": specialists})
}

// GetSpecialistHandler returns details for a specific specialist.
func (h *SpecialistHandler) GetSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	sp, err := h.Service.GetSpecialistByID(id)
	if err != nil {
		logger.Error("Specialist not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Specialist not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sp)
}

// RegisterSpecialistHandler creates a new specialist profile.
func (h *SpecialistHandler) RegisterSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)

	var sp models.Specialist
	if err := c.ShouldBindJSON(&sp); err != nil {
		logger.Error("Invalid specialist registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Service.RegisterSpecialist(sp)
	if err != nil {
		logger.Error("Failed to register specialist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register specialist", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSpecialistHandler updates specialist information.
func (h *SpecialistHandler) UpdateSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var sp models.Specialist
	if err := c.ShouldBindJSON(&sp); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sp.ID = id // Ensure the ID is set.
	updated, err := h.Service.UpdateSpecialist(sp)
	if err != nil {
		logger.Error("Failed to update specialist", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update specialist", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSpecialistHandler deletes a specialist profile.
func (h *SpecialistHandler) DeleteSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Service.DeleteSpecialist(id); err != nil {
		logger.Error("Failed to delete specialist", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete specialist", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Specialist deleted"})
}
