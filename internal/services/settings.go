package services

import (
	"context"
	"log/slog"

	"interior-studio-backend/internal/metrics"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/store"
)

// SettingsService reads and partially updates the stored credentials.
// Values are kept and returned in plaintext.
type SettingsService struct {
	store   *store.MemoryStore
	events  EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewSettingsService(st *store.MemoryStore, events EventPublisher, m *metrics.Metrics, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		store:   st,
		events:  publisherOrNop(events),
		metrics: m,
		logger:  loggerOrDefault(logger),
	}
}

func (s *SettingsService) Read(_ context.Context) models.APISettings {
	return s.store.Settings()
}

// Save overwrites only the fields present in patch and returns the merged record.
func (s *SettingsService) Save(ctx context.Context, patch models.APISettings) models.APISettings {
	var changed []string
	merged := s.store.UpdateSettings(func(current models.APISettings) models.APISettings {
		var next models.APISettings
		next, changed = models.MergeSettings(current, patch)
		return next
	})

	s.metrics.SettingsSaved()
	if len(changed) > 0 {
		s.events.Publish(realtime.EventSettingsUpdated, realtime.SettingsUpdatedPayload(changed))
	}
	s.logger.InfoContext(ctx, "settings saved", "fields", changed)
	return merged
}
