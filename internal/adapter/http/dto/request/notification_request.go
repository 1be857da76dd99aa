package request

// MarkSeenRequest acknowledges one notification event for a user.

type MarkSeenRequest struct {
	EventID string `json:"event_id" binding:"required"`
}
