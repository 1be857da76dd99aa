package entities

import (
	"encoding/json"
	"time"
)

// Event types published by the usecases and consumed by the notification
// worker. The partition key is the job id so all events of one job keep
// their order.

const (
	EventBidSubmitted       = "job.bid.submitted"
	EventBidAccepted        = "job.bid.accepted"
	EventBidRejected        = "job.bid.rejected"
	EventJobStatusChanged   = "job.status.changed"
	EventChangeOrderCreated = "job.change_order.proposed"
	EventChangeOrderUpdated = "job.change_order.updated"
)

// EventEnvelope is the wire format for every domain event.

type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	JobID         string          `json:"job_id"`
	RecipientID   string          `json:"recipient_id"` // user the notification is for
	Payload       json.RawMessage `json:"payload"`
}

// PartitionKey keeps all events of one job on one partition.
func PartitionKey(jobID string) []byte { return []byte(jobID) }

// ---- Payload types per event ----

type BidSubmittedPayload struct {
	BidID      string  `json:"bid_id"`
	JobID      string  `json:"job_id"`
	MechanicID string  `json:"mechanic_id"`
	Amount     float64 `json:"amount"`
}

type BidDecisionPayload struct {
	BidID      string    `json:"bid_id"`
	JobID      string    `json:"job_id"`
	MechanicID string    `json:"mechanic_id"`
	Status     BidStatus `json:"status"`
}

type JobStatusChangedPayload struct {
	JobID      string    `json:"job_id"`
	Event      JobEvent  `json:"event"`
	FromStatus JobStatus `json:"from_status"`
	ToStatus   JobStatus `json:"to_status"`
}

type ChangeOrderPayload struct {
	ChangeOrderID string            `json:"change_order_id"`
	JobID         string            `json:"job_id"`
	Status        ChangeOrderStatus `json:"status"`
	TotalAmount   float64           `json:"total_amount"`
}
