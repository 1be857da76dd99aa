package request

import (
	"strings"

	"mechmarket/internal/domain/entities"
)

// CreateJobRequest is the customer's initial service request.

type CreateJobRequest struct {
	CustomerID    string   `json:"customer_id" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Urgency       string   `json:"urgency"`
	Price         float64  `json:"price"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	Location      string   `json:"location"`
	Images        []string `json:"images"`
}

// TransitionRequest names the lifecycle event to apply to a job.

type TransitionRequest struct {
	Event string `json:"event" binding:"required"`
}

func (r TransitionRequest) ResolveEvent() entities.JobEvent {
	return entities.JobEvent(strings.TrimSpace(r.Event))
}
