package response

type UnreadCountResponse struct {
	UserID string `json:"user_id"`
	Unread int64  `json:"unread"`
}

type MarkSeenResponse struct {
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}
