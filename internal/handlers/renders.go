package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/services"
)

type RendersHandler struct {
	renders *services.RenderService
}

func NewRendersHandler(renders *services.RenderService) *RendersHandler {
	return &RendersHandler{
		renders: renders,
	}
}

// RequestRender godoc
// @Summary     Queue render job
// @Description Records a render request. The job starts queued with no image_url.
// @Tags        renders
// @Accept      json
// @Produce     json
// @Param       request body models.RenderRequest true "Render request"
// @Success     200 {object} models.RenderJob
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/renders [post]
func (h *RendersHandler) RequestRender(c *gin.Context) {
	var req models.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBindError(err))
		return
	}

	job, err := h.renders.Request(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListRenders godoc
// @Summary     List render jobs
// @Tags        renders
// @Produce     json
// @Success     200 {array} models.RenderJob
// @Router      /api/renders [get]
func (h *RendersHandler) ListRenders(c *gin.Context) {
	c.JSON(http.StatusOK, h.renders.List(c.Request.Context()))
}

// GetRender godoc
// @Summary     Get render job
// @Tags        renders
// @Produce     json
// @Param       job_id path string true "Job ID"
// @Success     200 {object} models.RenderJob
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/renders/{job_id} [get]
func (h *RendersHandler) GetRender(c *gin.Context) {
	job, err := h.renders.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// CompleteRender godoc
// @Summary     Mark render job complete
// @Description Sets status to complete and assigns the placeholder image_url if none is set. Idempotent.
// @Tags        renders
// @Produce     json
// @Param       job_id path string true "Job ID"
// @Success     200 {object} models.RenderJob
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/renders/{job_id}/complete [post]
func (h *RendersHandler) CompleteRender(c *gin.Context) {
	job, err := h.renders.Complete(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}
