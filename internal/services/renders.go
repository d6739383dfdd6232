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

type RenderService struct {
	store   *store.MemoryStore
	events  EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewRenderService(st *store.MemoryStore, events EventPublisher, m *metrics.Metrics, logger *slog.Logger) *RenderService {
	return &RenderService{
		store:   st,
		events:  publisherOrNop(events),
		metrics: m,
		logger:  loggerOrDefault(logger),
	}
}

// Request records a queued render job. No rendering backend is contacted and
// the layout and asset references are not checked.
func (s *RenderService) Request(ctx context.Context, req models.RenderRequest) (models.RenderJob, error) {
	var fields []models.FieldError
	if req.Prompt == nil {
		fields = append(fields, models.FieldError{Field: "prompt", Message: "field required"})
	}
	if req.StylePreset == nil {
		fields = append(fields, models.FieldError{Field: "style_preset", Message: "field required"})
	}
	if len(fields) > 0 {
		return models.RenderJob{}, apperrors.ValidationError("request body failed validation", fields...)
	}

	job := models.RenderJob{
		JobID:           newID(),
		Status:          models.StatusQueued,
		Prompt:          *req.Prompt,
		StylePreset:     *req.StylePreset,
		LayoutID:        req.LayoutID,
		FurnitureAssets: append([]string(nil), req.FurnitureAssets...),
	}
	s.store.InsertRenderJob(job)

	s.metrics.RenderJob(models.StatusQueued)
	s.events.Publish(realtime.EventRenderQueued, realtime.RenderPayload(job))
	s.logger.InfoContext(ctx, "render job queued",
		"job_id", job.JobID,
		"style_preset", job.StylePreset,
		"credential", s.credentialSource(req),
	)
	return job, nil
}

func (s *RenderService) List(_ context.Context) []models.RenderJob {
	return s.store.ListRenderJobs()
}

func (s *RenderService) Get(_ context.Context, jobID string) (models.RenderJob, error) {
	job, ok := s.store.GetRenderJob(jobID)
	if !ok {
		return models.RenderJob{}, apperrors.NotFoundError("Render job not found")
	}
	return job, nil
}

// Complete marks the job complete. An image URL already on the job is kept;
// otherwise the placeholder is assigned. Repeated calls are idempotent.
func (s *RenderService) Complete(ctx context.Context, jobID string) (models.RenderJob, error) {
	transitioned := false
	job, ok := s.store.UpdateRenderJob(jobID, func(job *models.RenderJob) {
		transitioned = job.Status != models.StatusComplete
		job.Status = models.StatusComplete
		if job.ImageURL == nil {
			url := models.PlaceholderRenderURL
			job.ImageURL = &url
		}
	})
	if !ok {
		return models.RenderJob{}, apperrors.NotFoundError("Render job not found")
	}

	if transitioned {
		s.metrics.RenderJob(models.StatusComplete)
		s.events.Publish(realtime.EventRenderCompleted, realtime.RenderPayload(job))
		s.logger.InfoContext(ctx, "render job completed", "job_id", job.JobID)
	}
	return job, nil
}

// credentialSource says where a render would take its API key from. The key itself is never logged.
func (s *RenderService) credentialSource(req models.RenderRequest) string {
	if req.NanoBananaKey != nil && *req.NanoBananaKey != "" {
		return "request"
	}
	if stored := s.store.Settings().NanoBananaKey; stored != nil && *stored != "" {
		return "settings"
	}
	return "none"
}
