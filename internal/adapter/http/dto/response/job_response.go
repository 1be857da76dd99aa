package response

import (
	"time"

	"mechmarket/internal/domain/entities"
)

type TimelineEntryResponse struct {
	Event      string    `json:"event"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       string    `json:"note,omitempty"`
}

type JobResponse struct {
	ID            string                  `json:"id"`
	Status        string                  `json:"status"`
	CustomerID    string                  `json:"customer_id"`
	MechanicID    string                  `json:"mechanic_id,omitempty"`
	Category      string                  `json:"category"`
	Urgency       string                  `json:"urgency"`
	Price         float64                 `json:"price,omitempty"`
	ScheduledDate string                  `json:"scheduled_date,omitempty"`
	ScheduledTime string                  `json:"scheduled_time,omitempty"`
	Location      string                  `json:"location,omitempty"`
	Images        []string                `json:"images,omitempty"`
	Timeline      []TimelineEntryResponse `json:"timeline"`
	Version       int64                   `json:"version"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	timeline := make([]TimelineEntryResponse, 0, len(j.Timeline))
	for _, e := range j.Timeline {
		timeline = append(timeline, TimelineEntryResponse{
			Event:      string(e.Event),
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			OccurredAt: e.OccurredAt,
			Note:       e.Note,
		})
	}
	return JobResponse{
		ID:            j.ID,
		Status:        string(j.Status),
		CustomerID:    j.CustomerID,
		MechanicID:    j.MechanicID,
		Category:      j.Category,
		Urgency:       string(j.Urgency),
		Price:         j.Price,
		ScheduledDate: j.ScheduledDate,
		ScheduledTime: j.ScheduledTime,
		Location:      j.Location,
		Images:        j.Images,
		Timeline:      timeline,
		Version:       j.Version,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

// ActionsResponse lists the actions a job's current status permits.

type ActionsResponse struct {
	JobID   string   `json:"job_id"`
	Actions []string `json:"actions"`
}

func FromActions(jobID string, actions []entities.JobAction) ActionsResponse {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return ActionsResponse{JobID: jobID, Actions: out}
}
