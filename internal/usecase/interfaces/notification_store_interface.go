package interfaces

import (
	"context"
	"time"
)

// NotificationRecord is one unread-feed entry for a user.

type NotificationRecord struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	JobID      string    `json:"job_id"`
	Seq        int64     `json:"seq"`
	OccurredAt time.Time `json:"occurred_at"`
}

// INotificationStore abstracts the per-user unread feed.
//
// Append assigns each record a per-user monotonically increasing sequence.
// The seen watermark only ever moves forward; UnreadCount counts records
// with a sequence above the watermark, so concurrent Append/MarkSeen calls
// merge instead of overwriting each other.

type INotificationStore interface {
	Append(ctx context.Context, userID string, rec NotificationRecord) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkSeen(ctx context.Context, userID, eventID string) error
	Watermark(ctx context.Context, userID string) (int64, error)
}
