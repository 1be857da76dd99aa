package entities

import "time"

// BidStatus represents a mechanic bid's lifecycle.
//
// At most one bid per job is ever accepted. Accepting a bid rejects every
// other pending bid on the same job in the same operation.

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

func ValidBidStatus(s BidStatus) bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected, BidStatusWithdrawn:
		return true
	default:
		return false
	}
}

// MinBidMessageLen is the minimum trimmed length of the bid message.
const MinBidMessageLen = 10

// Bid is a mechanic's priced, timed offer to perform an open job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id

type Bid struct {
	ID                string    `json:"id"`
	JobID             string    `json:"job_id"`
	MechanicID        string    `json:"mechanic_id"`
	Amount            float64   `json:"amount"`
	Message           string    `json:"message"`
	EstimatedDuration int       `json:"estimated_duration"` // minutes
	Status            BidStatus `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}
