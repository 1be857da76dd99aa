package usecase

import (
	"context"
	"strings"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"
)

// INotificationUseCase is the eventually-consistent unread counter. Counts
// derive from the event feed; MarkSeen only ever advances the per-user
// watermark, so late or repeated deliveries can never make the count grow
// back.

type INotificationUseCase interface {
	Record(ctx context.Context, env entities.EventEnvelope) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkSeen(ctx context.Context, userID, eventID string) error
}

type NotificationUseCase struct {
	store interfaces.INotificationStore
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(store interfaces.INotificationStore) *NotificationUseCase {
	return &NotificationUseCase{store: store}
}

// Record appends one event to its recipient's feed. Events without a
// recipient are dropped; re-delivered events are absorbed by the store.
func (u *NotificationUseCase) Record(ctx context.Context, env entities.EventEnvelope) error {
	userID := strings.TrimSpace(env.RecipientID)
	if userID == "" || env.EventID == "" {
		return nil
	}
	_, err := u.store.Append(ctx, userID, interfaces.NotificationRecord{
		EventID:    env.EventID,
		EventType:  env.EventType,
		JobID:      env.JobID,
		OccurredAt: env.OccurredAt,
	})
	return err
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, NewValidationError("user_id", "must not be empty")
	}
	return u.store.UnreadCount(ctx, userID)
}

func (u *NotificationUseCase) MarkSeen(ctx context.Context, userID, eventID string) error {
	userID = strings.TrimSpace(userID)
	eventID = strings.TrimSpace(eventID)
	if userID == "" {
		return NewValidationError("user_id", "must not be empty")
	}
	if eventID == "" {
		return NewValidationError("event_id", "must not be empty")
	}
	return u.store.MarkSeen(ctx, userID, eventID)
}
