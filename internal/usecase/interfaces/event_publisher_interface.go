package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IEventPublisher abstracts the event bus the usecases publish domain events
// to. Publishing is best-effort from the caller's point of view: a publish
// error never rolls back the state change it describes.

type IEventPublisher interface {
	Publish(ctx context.Context, env entities.EventEnvelope) error
}
