package services_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"interior-studio-backend/internal/metrics"
	"interior-studio-backend/internal/models"
	"interior-studio-backend/internal/store"
)

type publishedEvent struct {
	Type    string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type fixture struct {
	store     *store.MemoryStore
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		store:     store.NewMemoryStore(),
		publisher: &recordingPublisher{},
		metrics:   metrics.New(prometheus.NewRegistry()),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// element returns a fully specified element of the given type at the origin.
func element(id, elementType string) models.LayoutElement {
	return models.LayoutElement{
		ID:     strPtr(id),
		Type:   elementType,
		Label:  strPtr(""),
		Width:  floatPtr(100),
		Height: floatPtr(100),
		Left:   floatPtr(0),
		Top:    floatPtr(0),
	}
}
