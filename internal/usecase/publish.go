package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const eventProducer = "marketplace-api"

// publishEvent wraps payload in an envelope and hands it to the publisher.
// Event emission never fails the state change it describes; errors are only
// logged. A nil publisher disables emission entirely.
func publishEvent(ctx context.Context, pub interfaces.IEventPublisher, eventType, jobID, recipientID string, payload any) {
	if pub == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[events][usecase] payload marshal failed type=%s err=%v", eventType, err)
		return
	}
	env := entities.EventEnvelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     eventProducer,
		JobID:        jobID,
		RecipientID:  recipientID,
		Payload:      b,
	}
	if err := pub.Publish(ctx, env); err != nil {
		log.Printf("[events][usecase] publish failed type=%s job_id=%s err=%v", eventType, jobID, err)
	}
}
