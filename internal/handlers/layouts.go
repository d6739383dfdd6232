package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/services"
)

type LayoutsHandler struct {
	layouts *services.LayoutService
}

func NewLayoutsHandler(layouts *services.LayoutService) *LayoutsHandler {
	return &LayoutsHandler{
		layouts: layouts,
	}
}

// CreateLayout godoc
// @Summary     Create layout
// @Description Stores a room layout and returns it with a generated layout_id.
// @Tags        layouts
// @Accept      json
// @Produce     json
// @Param       request body models.LayoutPayload true "Layout"
// @Success     200 {object} models.LayoutResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/layouts [post]
func (h *LayoutsHandler) CreateLayout(c *gin.Context) {
	var req models.LayoutPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBindError(err))
		return
	}

	layout, err := h.layouts.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, layout)
}

// ListLayouts godoc
// @Summary     List layouts
// @Tags        layouts
// @Produce     json
// @Success     200 {array} models.LayoutResponse
// @Router      /api/layouts [get]
func (h *LayoutsHandler) ListLayouts(c *gin.Context) {
	c.JSON(http.StatusOK, h.layouts.List(c.Request.Context()))
}

// GetLayout godoc
// @Summary     Get layout
// @Tags        layouts
// @Produce     json
// @Param       layout_id path string true "Layout ID"
// @Success     200 {object} models.LayoutResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/layouts/{layout_id} [get]
func (h *LayoutsHandler) GetLayout(c *gin.Context) {
	layout, err := h.layouts.Get(c.Request.Context(), c.Param("layout_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, layout)
}
