package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/services"
)

type MaterialsHandler struct {
	materials *services.MaterialService
}

func NewMaterialsHandler(materials *services.MaterialService) *MaterialsHandler {
	return &MaterialsHandler{
		materials: materials,
	}
}

// RequestMaterialEdit godoc
// @Summary     Queue material edit
// @Tags        materials
// @Accept      json
// @Produce     json
// @Param       request body models.MaterialEditRequest true "Material edit request"
// @Success     200 {object} models.MaterialEditResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /api/materials [post]
func (h *MaterialsHandler) RequestMaterialEdit(c *gin.Context) {
	var req models.MaterialEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.FromBindError(err))
		return
	}

	edit, err := h.materials.Request(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, edit.Response())
}

// ListMaterialEdits godoc
// @Summary     List material edits
// @Tags        materials
// @Produce     json
// @Success     200 {array} models.MaterialEditResponse
// @Router      /api/materials [get]
func (h *MaterialsHandler) ListMaterialEdits(c *gin.Context) {
	edits := h.materials.List(c.Request.Context())

	responses := make([]models.MaterialEditResponse, len(edits))
	for i, edit := range edits {
		responses[i] = edit.Response()
	}
	c.JSON(http.StatusOK, responses)
}

// GetMaterialEdit godoc
// @Summary     Get material edit
// @Tags        materials
// @Produce     json
// @Param       edit_id path string true "Edit ID"
// @Success     200 {object} models.MaterialEditResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/materials/{edit_id} [get]
func (h *MaterialsHandler) GetMaterialEdit(c *gin.Context) {
	edit, err := h.materials.Get(c.Request.Context(), c.Param("edit_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, edit.Response())
}

// CompleteMaterialEdit godoc
// @Summary     Mark material edit complete
// @Description Sets status to complete and assigns the placeholder preview_url if none is set. Idempotent.
// @Tags        materials
// @Produce     json
// @Param       edit_id path string true "Edit ID"
// @Success     200 {object} models.MaterialEditResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/materials/{edit_id}/complete [post]
func (h *MaterialsHandler) CompleteMaterialEdit(c *gin.Context) {
	edit, err := h.materials.Complete(c.Request.Context(), c.Param("edit_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, edit.Response())
}
