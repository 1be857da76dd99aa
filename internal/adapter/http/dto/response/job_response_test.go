package response

import (
	"testing"
	"time"

	"mechmarket/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	job := entities.Job{
		ID:         "job-1",
		Status:     entities.JobStatusScheduled,
		CustomerID: "cust-1",
		MechanicID: "mech-1",
		Category:   "brakes",
		Urgency:    entities.JobUrgencyNormal,
		Price:      85,
		Timeline: []entities.TimelineEntry{
			{Event: entities.JobEventBidAccepted, FromStatus: entities.JobStatusOpen, ToStatus: entities.JobStatusScheduled, OccurredAt: now},
		},
		Version: 2,
	}

	resp := FromJob(job)
	if resp.ID != "job-1" || resp.Status != "scheduled" || resp.MechanicID != "mech-1" {
		t.Fatalf("unexpected mapping: %+v", resp)
	}
	if len(resp.Timeline) != 1 {
		t.Fatalf("expected 1 timeline entry, got %d", len(resp.Timeline))
	}
	entry := resp.Timeline[0]
	if entry.Event != "bid_accepted" || entry.FromStatus != "open" || entry.ToStatus != "scheduled" {
		t.Fatalf("unexpected timeline mapping: %+v", entry)
	}
	if resp.Version != 2 {
		t.Fatalf("expected version 2, got %d", resp.Version)
	}
}

func TestFromActions(t *testing.T) {
	resp := FromActions("job-1", []entities.JobAction{entities.JobActionView, entities.JobActionRate})
	if resp.JobID != "job-1" {
		t.Fatalf("expected job-1, got %s", resp.JobID)
	}
	if len(resp.Actions) != 2 || resp.Actions[0] != "view" || resp.Actions[1] != "rate" {
		t.Fatalf("unexpected actions: %v", resp.Actions)
	}
}
