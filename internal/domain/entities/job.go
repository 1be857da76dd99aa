package entities

import "time"

// JobStatus represents the lifecycle of a service job.
//
// Domain notes:
//   - The marketplace service is the source of truth for job state.
//   - Transitions are driven by JobEvent values only; direct status writes
//     are not part of the contract.

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusConfirmed  JobStatus = "confirmed"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusOnHold     JobStatus = "on_hold"
)

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusOpen, JobStatusScheduled, JobStatusConfirmed, JobStatusInProgress,
		JobStatusCompleted, JobStatusCancelled, JobStatusOnHold:
		return true
	default:
		return false
	}
}

// JobAction is a customer/mechanic facing action whose availability depends
// on the current job status.

type JobAction string

const (
	JobActionView     JobAction = "view"
	JobActionSchedule JobAction = "schedule"
	JobActionRate     JobAction = "rate"
	JobActionCancel   JobAction = "cancel"
	JobActionRebook   JobAction = "rebook"
	JobActionMessage  JobAction = "message"
)

// AllJobActions lists every action known to the policy table.
var AllJobActions = []JobAction{
	JobActionView, JobActionSchedule, JobActionRate,
	JobActionCancel, JobActionRebook, JobActionMessage,
}

// actionPolicy is the closed (status, action) table. Every pair not listed
// here is illegal. view and message are legal in every status and are handled
// directly in CanPerformAction.
var actionPolicy = map[JobAction]map[JobStatus]bool{
	JobActionSchedule: {JobStatusOpen: true},
	JobActionRate:     {JobStatusCompleted: true},
	JobActionRebook:   {JobStatusCompleted: true},
	JobActionCancel:   {JobStatusOpen: true, JobStatusScheduled: true},
}

// CanPerformAction reports whether action is legal for a job in status.
// It is a total function: unknown pairs return false.
func CanPerformAction(status JobStatus, action JobAction) bool {
	if !ValidJobStatus(status) {
		return false
	}
	switch action {
	case JobActionView, JobActionMessage:
		return true
	}
	return actionPolicy[action][status]
}

// AvailableActions returns the actions legal for status, in stable order.
func AvailableActions(status JobStatus) []JobAction {
	out := make([]JobAction, 0, len(AllJobActions))
	for _, a := range AllJobActions {
		if CanPerformAction(status, a) {
			out = append(out, a)
		}
	}
	return out
}

// JobEvent drives status transitions.

type JobEvent string

const (
	JobEventBidAccepted      JobEvent = "bid_accepted"      // open -> scheduled
	JobEventScheduleAccepted JobEvent = "schedule_accepted" // scheduled -> confirmed
	JobEventScheduleDeclined JobEvent = "schedule_declined" // scheduled -> open
	JobEventWorkStarted      JobEvent = "work_started"      // confirmed -> in_progress
	JobEventWorkCompleted    JobEvent = "work_completed"    // in_progress -> completed
	JobEventCancelled        JobEvent = "cancelled"         // open|scheduled -> cancelled
	JobEventPutOnHold        JobEvent = "put_on_hold"       // in_progress -> on_hold
	JobEventResumed          JobEvent = "resumed"           // on_hold -> in_progress
)

// transitions maps (event, current status) to the next status. A missing
// entry means the transition is illegal.
var transitions = map[JobEvent]map[JobStatus]JobStatus{
	JobEventBidAccepted:      {JobStatusOpen: JobStatusScheduled},
	JobEventScheduleAccepted: {JobStatusScheduled: JobStatusConfirmed},
	JobEventScheduleDeclined: {JobStatusScheduled: JobStatusOpen},
	JobEventWorkStarted:      {JobStatusConfirmed: JobStatusInProgress},
	JobEventWorkCompleted:    {JobStatusInProgress: JobStatusCompleted},
	JobEventCancelled: {
		JobStatusOpen:      JobStatusCancelled,
		JobStatusScheduled: JobStatusCancelled,
	},
	JobEventPutOnHold: {JobStatusInProgress: JobStatusOnHold},
	JobEventResumed:   {JobStatusOnHold: JobStatusInProgress},
}

// NextStatus resolves the status reached by applying event to from.
// ok is false when the edge does not exist.
func NextStatus(from JobStatus, event JobEvent) (JobStatus, bool) {
	to, ok := transitions[event][from]
	return to, ok
}

// TimelineEntry is one append-only record of a job's history.

type TimelineEntry struct {
	Event      JobEvent  `json:"event"`
	FromStatus JobStatus `json:"from_status"`
	ToStatus   JobStatus `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       string    `json:"note,omitempty"`
}

// JobUrgency mirrors ChangeOrderUrgency values for the initial request.

type JobUrgency string

const (
	JobUrgencyLow    JobUrgency = "low"
	JobUrgencyNormal JobUrgency = "normal"
	JobUrgencyHigh   JobUrgency = "high"
	JobUrgencyUrgent JobUrgency = "urgent"
)

// Job is a unit of requested mechanical service tracked through a fixed
// lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - MechanicID is set iff status is not open/cancelled and an accepted Bid
//     references this job.
//   - Timeline is append-only; every successful transition adds one entry.
//   - Version increments on every write and backs the accept-bid
//     compare-and-swap.

type Job struct {
	ID            string          `json:"id"`
	Status        JobStatus       `json:"status"`
	CustomerID    string          `json:"customer_id"`
	MechanicID    string          `json:"mechanic_id,omitempty"`
	Category      string          `json:"category"`
	Urgency       JobUrgency      `json:"urgency"`
	Price         float64         `json:"price,omitempty"`
	ScheduledDate string          `json:"scheduled_date,omitempty"`
	ScheduledTime string          `json:"scheduled_time,omitempty"`
	Location      string          `json:"location,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Timeline      []TimelineEntry `json:"timeline"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Apply returns a copy of the job advanced by event, with the timeline entry
// appended. The receiver is never mutated; on an illegal edge the zero Job
// and false are returned.
func (j Job) Apply(event JobEvent, now time.Time) (Job, bool) {
	next, ok := NextStatus(j.Status, event)
	if !ok {
		return Job{}, false
	}
	out := j
	out.Status = next
	out.UpdatedAt = now
	out.Timeline = append(append([]TimelineEntry(nil), j.Timeline...), TimelineEntry{
		Event:      event,
		FromStatus: j.Status,
		ToStatus:   next,
		OccurredAt: now,
	})
	// Declining a schedule puts the job back on the market; re-bid from
	// scratch, so the assignment is cleared.
	if event == JobEventScheduleDeclined {
		out.MechanicID = ""
	}
	return out, true
}
