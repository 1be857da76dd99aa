package entities

import "time"

// ChangeOrderStatus represents the approval/escrow/payment lifecycle of a
// supplemental work request.
//
// Lifecycle (no skips):
//   - pending -> approved | rejected | cancelled | expired
//   - approved -> escrow | cancelled   (escrow after the payment hold confirms)
//   - escrow -> paid | cancelled       (cancelled only via job cancellation,
//     which voids the hold first)
//   - paid, rejected, cancelled, expired are terminal.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending   ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved  ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected  ChangeOrderStatus = "rejected"
	ChangeOrderStatusCancelled ChangeOrderStatus = "cancelled"
	ChangeOrderStatusEscrow    ChangeOrderStatus = "escrow"
	ChangeOrderStatusPaid      ChangeOrderStatus = "paid"
	ChangeOrderStatusExpired   ChangeOrderStatus = "expired"
)

var changeOrderNext = map[ChangeOrderStatus]map[ChangeOrderStatus]bool{
	ChangeOrderStatusPending: {
		ChangeOrderStatusApproved:  true,
		ChangeOrderStatusRejected:  true,
		ChangeOrderStatusCancelled: true,
		ChangeOrderStatusExpired:   true,
	},
	ChangeOrderStatusApproved: {
		ChangeOrderStatusEscrow:    true,
		ChangeOrderStatusCancelled: true,
	},
	ChangeOrderStatusEscrow: {
		ChangeOrderStatusPaid:      true,
		ChangeOrderStatusCancelled: true,
	},
	ChangeOrderStatusRejected:  {},
	ChangeOrderStatusCancelled: {},
	ChangeOrderStatusPaid:      {},
	ChangeOrderStatusExpired:   {},
}

// CanTransitionChangeOrder reports whether from -> to is a legal edge.
func CanTransitionChangeOrder(from, to ChangeOrderStatus) bool {
	return changeOrderNext[from][to]
}

// TerminalChangeOrderStatus reports whether s admits no further transitions.
func TerminalChangeOrderStatus(s ChangeOrderStatus) bool {
	return len(changeOrderNext[s]) == 0
}

// ChangeOrderUrgency drives the immediate-approval flag.

type ChangeOrderUrgency string

const (
	ChangeOrderUrgencyLow    ChangeOrderUrgency = "low"
	ChangeOrderUrgencyNormal ChangeOrderUrgency = "normal"
	ChangeOrderUrgencyHigh   ChangeOrderUrgency = "high"
	ChangeOrderUrgencyUrgent ChangeOrderUrgency = "urgent"
)

func ValidChangeOrderUrgency(u ChangeOrderUrgency) bool {
	switch u {
	case ChangeOrderUrgencyLow, ChangeOrderUrgencyNormal, ChangeOrderUrgencyHigh, ChangeOrderUrgencyUrgent:
		return true
	default:
		return false
	}
}

// ChangeOrder is a mechanic-initiated request for additional paid work
// discovered after a job has started.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Invariants:
//   - TotalAmount equals the sum of the line item totals.
//   - PaymentIntentID is set once the escrow hold is requested and is the
//     idempotency anchor for hold/capture retries.

type ChangeOrder struct {
	ID                        string             `json:"id"`
	JobID                     string             `json:"job_id"`
	Title                     string             `json:"title"`
	Description               string             `json:"description"`
	LineItems                 []LineItem         `json:"line_items"`
	TotalAmount               float64            `json:"total_amount"`
	Urgency                   ChangeOrderUrgency `json:"urgency"`
	RequiresImmediateApproval bool               `json:"requires_immediate_approval"`
	Status                    ChangeOrderStatus  `json:"status"`
	PaymentIntentID           string             `json:"payment_intent_id,omitempty"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
	ExpiresAt                 *time.Time         `json:"expires_at,omitempty"`
}

// Expired reports whether a still-pending change order has passed its
// deadline at now.
func (co ChangeOrder) Expired(now time.Time) bool {
	return co.Status == ChangeOrderStatusPending && co.ExpiresAt != nil && co.ExpiresAt.Before(now)
}
