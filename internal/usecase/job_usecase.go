package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// changeOrderResolver is the slice of the change-order usecase the job
// lifecycle needs: resolving holds on cancellation and releasing them on
// completion.

type changeOrderResolver interface {
	CancelForJob(ctx context.Context, jobID string) error
	ReleaseForJob(ctx context.Context, jobID string) error
}

// IJobUseCase is the authoritative job lifecycle policy: which actions are
// legal in a status and which transitions exist.

type IJobUseCase interface {
	CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
	Transition(ctx context.Context, jobID string, event entities.JobEvent) (entities.Job, error)
	Cancel(ctx context.Context, jobID string) (entities.Job, error)
	Actions(ctx context.Context, jobID string) ([]entities.JobAction, error)
}

// CreateJobInput carries the customer's initial request.

type CreateJobInput struct {
	CustomerID    string
	Category      string
	Urgency       entities.JobUrgency
	Price         float64
	ScheduledDate string
	ScheduledTime string
	Location      string
	Images        []string
}

type JobUseCase struct {
	jobs         interfaces.IJobRepository
	changeOrders changeOrderResolver
	publisher    interfaces.IEventPublisher
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, changeOrders changeOrderResolver, publisher interfaces.IEventPublisher) *JobUseCase {
	return &JobUseCase{jobs: jobs, changeOrders: changeOrders, publisher: publisher}
}

func (u *JobUseCase) CreateJob(ctx context.Context, input CreateJobInput) (entities.Job, error) {
	customerID := strings.TrimSpace(input.CustomerID)
	category := strings.TrimSpace(input.Category)
	if customerID == "" {
		return entities.Job{}, NewValidationError("customer_id", "must not be empty")
	}
	if category == "" {
		return entities.Job{}, NewValidationError("category", "must not be empty")
	}
	urgency := input.Urgency
	if urgency == "" {
		urgency = entities.JobUrgencyNormal
	}
	if input.Price < 0 {
		return entities.Job{}, NewValidationError("price", "must not be negative")
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		Status:        entities.JobStatusOpen,
		CustomerID:    customerID,
		Category:      category,
		Urgency:       urgency,
		Price:         input.Price,
		ScheduledDate: strings.TrimSpace(input.ScheduledDate),
		ScheduledTime: strings.TrimSpace(input.ScheduledTime),
		Location:      strings.TrimSpace(input.Location),
		Images:        input.Images,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.jobs.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, NewValidationError("job_id", "must not be empty")
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, NewValidationError("customer_id", "must not be empty")
	}
	return u.jobs.ListByCustomerID(ctx, customerID)
}

// Transition applies a lifecycle event to a job. Illegal edges fail with
// ErrIllegalTransition and leave the job unchanged; bid acceptance and
// cancellation are routed through their dedicated operations because they
// touch other aggregates.
func (u *JobUseCase) Transition(ctx context.Context, jobID string, event entities.JobEvent) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, NewValidationError("job_id", "must not be empty")
	}
	switch event {
	case entities.JobEventBidAccepted:
		return entities.Job{}, NewValidationError("event", "bid acceptance is driven by accepting a bid")
	case entities.JobEventCancelled:
		return u.Cancel(ctx, jobID)
	}

	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	next, ok := job.Apply(event, time.Now().UTC())
	if !ok {
		return entities.Job{}, ErrIllegalTransition
	}

	updated, err := u.jobs.Update(ctx, next, job.Version)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		// Lost a concurrent write; the caller should re-read and retry.
		return entities.Job{}, ErrInvalidState
	}
	u.notifyStatusChanged(ctx, job, updated, event)

	if event == entities.JobEventWorkCompleted && u.changeOrders != nil {
		// Escrowed change orders ride along with job completion. Failures
		// stay in escrow for an explicit release retry.
		if err := u.changeOrders.ReleaseForJob(ctx, updated.ID); err != nil {
			log.Printf("[job][usecase] releasing change orders failed job_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

// Cancel cancels an open or scheduled job. Non-terminal change orders are
// resolved first, voiding escrow holds at the provider, so cancellation
// never orphans held funds.
func (u *JobUseCase) Cancel(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, NewValidationError("job_id", "must not be empty")
	}
	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if _, ok := entities.NextStatus(job.Status, entities.JobEventCancelled); !ok {
		return entities.Job{}, ErrIllegalTransition
	}

	if u.changeOrders != nil {
		if err := u.changeOrders.CancelForJob(ctx, jobID); err != nil {
			return entities.Job{}, err
		}
	}

	next, ok := job.Apply(entities.JobEventCancelled, time.Now().UTC())
	if !ok {
		return entities.Job{}, ErrIllegalTransition
	}
	updated, err := u.jobs.Update(ctx, next, job.Version)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrInvalidState
	}
	u.notifyStatusChanged(ctx, job, updated, entities.JobEventCancelled)
	return updated, nil
}

// Actions returns the actions legal for the job's current status.
func (u *JobUseCase) Actions(ctx context.Context, jobID string) ([]entities.JobAction, error) {
	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return entities.AvailableActions(job.Status), nil
}

func (u *JobUseCase) notifyStatusChanged(ctx context.Context, before, after entities.Job, event entities.JobEvent) {
	payload := entities.JobStatusChangedPayload{
		JobID:      after.ID,
		Event:      event,
		FromStatus: before.Status,
		ToStatus:   after.Status,
	}
	publishEvent(ctx, u.publisher, entities.EventJobStatusChanged, after.ID, after.CustomerID, payload)
	if after.MechanicID != "" {
		publishEvent(ctx, u.publisher, entities.EventJobStatusChanged, after.ID, after.MechanicID, payload)
	}
}
