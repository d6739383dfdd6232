package services

import (
	"context"
	"fmt"
	"log/slog"

	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/metrics"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/store"
)

type LayoutService struct {
	store   *store.MemoryStore
	events  EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewLayoutService(st *store.MemoryStore, events EventPublisher, m *metrics.Metrics, logger *slog.Logger) *LayoutService {
	return &LayoutService{
		store:   st,
		events:  publisherOrNop(events),
		metrics: m,
		logger:  loggerOrDefault(logger),
	}
}

// Create stores the payload under a fresh id and returns the stored record.
func (s *LayoutService) Create(ctx context.Context, payload models.LayoutPayload) (models.LayoutResponse, error) {
	if err := validateLayout(payload); err != nil {
		return models.LayoutResponse{}, err
	}

	elements := make([]models.LayoutElement, len(payload.Elements))
	for i, el := range payload.Elements {
		elements[i] = el.Clone()
	}
	payload.Elements = elements

	layout := models.LayoutResponse{
		LayoutID:      newID(),
		LayoutPayload: payload,
	}
	s.store.InsertLayout(layout)

	s.metrics.LayoutCreated()
	s.events.Publish(realtime.EventLayoutCreated, realtime.LayoutCreatedPayload(layout))
	s.logger.InfoContext(ctx, "layout created",
		"layout_id", layout.LayoutID,
		"elements", len(layout.Elements),
	)
	return layout, nil
}

func (s *LayoutService) List(_ context.Context) []models.LayoutResponse {
	return s.store.ListLayouts()
}

func (s *LayoutService) Get(_ context.Context, layoutID string) (models.LayoutResponse, error) {
	layout, ok := s.store.GetLayout(layoutID)
	if !ok {
		return models.LayoutResponse{}, apperrors.NotFoundError("Layout not found")
	}
	return layout, nil
}

func validateLayout(payload models.LayoutPayload) error {
	var fields []models.FieldError
	if payload.Name == "" {
		fields = append(fields, models.FieldError{Field: "name", Message: "field required"})
	}
	if payload.CeilingHeight <= 0 {
		fields = append(fields, models.FieldError{Field: "ceiling_height", Message: "must be greater than 0"})
	}

	seen := make(map[string]int, len(payload.Elements))
	for i, el := range payload.Elements {
		required := func(name string) {
			fields = append(fields, models.FieldError{
				Field:   fmt.Sprintf("elements[%d].%s", i, name),
				Message: "field required",
			})
		}

		if el.ID == nil {
			required("id")
		} else if first, dup := seen[*el.ID]; dup {
			fields = append(fields, models.FieldError{
				Field:   fmt.Sprintf("elements[%d].id", i),
				Message: fmt.Sprintf("duplicates the id of elements[%d]", first),
			})
		} else {
			seen[*el.ID] = i
		}

		switch el.Type {
		case models.ElementWall, models.ElementDoor, models.ElementWindow:
		default:
			fields = append(fields, models.FieldError{
				Field:   fmt.Sprintf("elements[%d].type", i),
				Message: "must be one of: wall, door, window",
			})
		}

		if el.Label == nil {
			required("label")
		}
		for _, dim := range []struct {
			name  string
			value *float64
		}{{"width", el.Width}, {"height", el.Height}, {"left", el.Left}, {"top", el.Top}} {
			if dim.value == nil {
				required(dim.name)
			}
		}
	}

	if len(fields) > 0 {
		return apperrors.ValidationError("request body failed validation", fields...)
	}
	return nil
}
