package services

import (
	"context"
	"log/slog"

	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/metrics"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/store"
)

type MaterialService struct {
	store   *store.MemoryStore
	events  EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewMaterialService(st *store.MemoryStore, events EventPublisher, m *metrics.Metrics, logger *slog.Logger) *MaterialService {
	return &MaterialService{
		store:   st,
		events:  publisherOrNop(events),
		metrics: m,
		logger:  loggerOrDefault(logger),
	}
}

// Request records a queued material edit. element_id and render_id are not
// checked against existing layouts or renders.
func (s *MaterialService) Request(ctx context.Context, req models.MaterialEditRequest) (models.MaterialEdit, error) {
	var fields []models.FieldError
	if req.ElementID == nil {
		fields = append(fields, models.FieldError{Field: "element_id", Message: "field required"})
	}
	if req.Description == nil {
		fields = append(fields, models.FieldError{Field: "description", Message: "field required"})
	}
	if req.Color == nil {
		fields = append(fields, models.FieldError{Field: "color", Message: "field required"})
	}
	if len(fields) > 0 {
		return models.MaterialEdit{}, apperrors.ValidationError("request body failed validation", fields...)
	}

	edit := models.MaterialEdit{
		EditID:      newID(),
		Status:      models.StatusQueued,
		ElementID:   *req.ElementID,
		Description: *req.Description,
		Color:       *req.Color,
		RenderID:    req.RenderID,
	}
	s.store.InsertMaterialEdit(edit)

	s.metrics.MaterialEdit(models.StatusQueued)
	s.events.Publish(realtime.EventMaterialQueued, realtime.MaterialPayload(edit))
	s.logger.InfoContext(ctx, "material edit queued",
		"edit_id", edit.EditID,
		"element_id", edit.ElementID,
	)
	return edit, nil
}

func (s *MaterialService) List(_ context.Context) []models.MaterialEdit {
	return s.store.ListMaterialEdits()
}

func (s *MaterialService) Get(_ context.Context, editID string) (models.MaterialEdit, error) {
	edit, ok := s.store.GetMaterialEdit(editID)
	if !ok {
		return models.MaterialEdit{}, apperrors.NotFoundError("Material edit not found")
	}
	return edit, nil
}

// Complete marks the edit complete, assigning the placeholder preview only if none is set.
func (s *MaterialService) Complete(ctx context.Context, editID string) (models.MaterialEdit, error) {
	transitioned := false
	edit, ok := s.store.UpdateMaterialEdit(editID, func(edit *models.MaterialEdit) {
		transitioned = edit.Status != models.StatusComplete
		edit.Status = models.StatusComplete
		if edit.PreviewURL == nil {
			url := models.PlaceholderPreviewURL
			edit.PreviewURL = &url
		}
	})
	if !ok {
		return models.MaterialEdit{}, apperrors.NotFoundError("Material edit not found")
	}

	if transitioned {
		s.metrics.MaterialEdit(models.StatusComplete)
		s.events.Publish(realtime.EventMaterialCompleted, realtime.MaterialPayload(edit))
		s.logger.InfoContext(ctx, "material edit completed", "edit_id", edit.EditID)
	}
	return edit, nil
}
