package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/services"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
	}
}

// ReadSettings godoc
// @Summary     Read API settings
// @Tags        settings
// @Produce     json
// @Success     200 {object} models.APISettings
// @Router      /api/settings [get]
func (h *SettingsHandler) ReadSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Read(c.Request.Context()))
}

// SaveSettings godoc
// @Summary     Save API settings
// @Description Overwrites only the fields that are present and non-null; returns the merged settings.
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body models.APISettings true "Settings patch"
// @Success     200 {object} models.APISettings
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/settings [post]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var patch models.APISettings
	if err := c.ShouldBindJSON(&patch); err != nil {
		_ = c.Error(apperrors.FromBindError(err))
		return
	}

	c.JSON(http.StatusOK, h.settings.Save(c.Request.Context(), patch))
}
