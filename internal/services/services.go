package services

import (
	"log/slog"

	"github.com/google/uuid"
)

// EventPublisher receives lifecycle events after a store mutation succeeds.
type EventPublisher interface {
	Publish(eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

func newID() string {
	return uuid.NewString()
}
