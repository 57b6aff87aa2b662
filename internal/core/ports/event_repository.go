package ports

import (
	"context"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// EventRepository persists the session audit trail.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.SessionEvent) error
}

// EventPublisher hands audit events off without blocking the caller's flow.
type EventPublisher interface {
	Publish(event domain.SessionEvent)
}
