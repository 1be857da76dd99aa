package response

import (
	"time"

	"mechmarket/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	IsRequired  bool    `json:"is_required"`
}

type ChangeOrderResponse struct {
	ID                        string             `json:"id"`
	JobID                     string             `json:"job_id"`
	Title                     string             `json:"title"`
	Description               string             `json:"description,omitempty"`
	LineItems                 []LineItemResponse `json:"line_items"`
	TotalAmount               float64            `json:"total_amount"`
	Urgency                   string             `json:"urgency"`
	RequiresImmediateApproval bool               `json:"requires_immediate_approval"`
	Status                    string             `json:"status"`
	PaymentIntentID           string             `json:"payment_intent_id,omitempty"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
	ExpiresAt                 *time.Time         `json:"expires_at,omitempty"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	items := make([]LineItemResponse, 0, len(co.LineItems))
	for _, li := range co.LineItems {
		items = append(items, LineItemResponse{
			ID:          li.ID,
			ServiceName: li.ServiceName,
			Category:    string(li.Category),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
			IsRequired:  li.IsRequired,
		})
	}
	return ChangeOrderResponse{
		ID:                        co.ID,
		JobID:                     co.JobID,
		Title:                     co.Title,
		Description:               co.Description,
		LineItems:                 items,
		TotalAmount:               co.TotalAmount,
		Urgency:                   string(co.Urgency),
		RequiresImmediateApproval: co.RequiresImmediateApproval,
		Status:                    string(co.Status),
		PaymentIntentID:           co.PaymentIntentID,
		CreatedAt:                 co.CreatedAt,
		UpdatedAt:                 co.UpdatedAt,
		ExpiresAt:                 co.ExpiresAt,
	}
}

func FromChangeOrders(orders []entities.ChangeOrder) []ChangeOrderResponse {
	out := make([]ChangeOrderResponse, 0, len(orders))
	for _, co := range orders {
		out = append(out, FromChangeOrder(co))
	}
	return out
}
