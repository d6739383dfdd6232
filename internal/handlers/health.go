package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/models"
)

// HealthHandler godoc
// @Summary     Liveness probe
// @Description Reports that the process is serving requests. No dependencies are checked; state is in memory.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: models.HealthStatusOK})
}
