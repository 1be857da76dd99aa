package request

import (
	"errors"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
)

var ErrInvalidExpiresAt = errors.New("invalid expires_at")

// LineItemRequest is one itemized charge of a change order.

type LineItemRequest struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	IsRequired  bool    `json:"is_required"`
}

// ProposeChangeOrderRequest is the mechanic's supplemental-work proposal.
// expires_at is RFC3339; an absent value means the proposal never expires.

type ProposeChangeOrderRequest struct {
	JobID       string            `json:"job_id" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	LineItems   []LineItemRequest `json:"line_items" binding:"required"`
	Urgency     string            `json:"urgency"`
	ExpiresAt   string            `json:"expires_at"`
}

func (r ProposeChangeOrderRequest) ResolveLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, entities.LineItem{
			ServiceName: strings.TrimSpace(li.ServiceName),
			Category:    entities.LineItemCategory(strings.TrimSpace(li.Category)),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			IsRequired:  li.IsRequired,
		})
	}
	return items
}

func (r ProposeChangeOrderRequest) ResolveExpiresAt() (*time.Time, error) {
	s := strings.TrimSpace(r.ExpiresAt)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidExpiresAt
	}
	utc := t.UTC()
	return &utc, nil
}
