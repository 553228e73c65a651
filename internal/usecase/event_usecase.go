package usecase

import (
	"context"

	"launchpad/internal/domain/service"
)

// EventUsecase reacts to domain events delivered by the event worker.
// A returned error means the delivery should be retried.
type EventUsecase interface {
	Handle(ctx context.Context, event *service.DomainEvent) error
}
