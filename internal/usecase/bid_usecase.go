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

// IBidUseCase is the bid ledger: competing mechanic bids for an open job and
// the accept/reject race.

type IBidUseCase interface {
	SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, message string, estimatedDuration int) (entities.Bid, error)
	AcceptBid(ctx context.Context, jobID, bidID string) (entities.Job, error)
	WithdrawBid(ctx context.Context, bidID string) (entities.Bid, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error)
}

type BidUseCase struct {
	bids      interfaces.IBidRepository
	jobs      interfaces.IJobRepository
	publisher interfaces.IEventPublisher
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(bids interfaces.IBidRepository, jobs interfaces.IJobRepository, publisher interfaces.IEventPublisher) *BidUseCase {
	return &BidUseCase{bids: bids, jobs: jobs, publisher: publisher}
}

func (u *BidUseCase) SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, message string, estimatedDuration int) (entities.Bid, error) {
	jobID = strings.TrimSpace(jobID)
	mechanicID = strings.TrimSpace(mechanicID)
	message = strings.TrimSpace(message)

	if jobID == "" {
		return entities.Bid{}, NewValidationError("job_id", "must not be empty")
	}
	if mechanicID == "" {
		return entities.Bid{}, NewValidationError("mechanic_id", "must not be empty")
	}
	if amount <= 0 {
		return entities.Bid{}, NewValidationError("amount", "must be greater than zero")
	}
	if len(message) < entities.MinBidMessageLen {
		return entities.Bid{}, NewValidationError("message", "must be at least 10 characters")
	}
	if estimatedDuration <= 0 {
		return entities.Bid{}, NewValidationError("estimated_duration", "must be a positive number of minutes")
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if job.ID == "" {
		return entities.Bid{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusOpen {
		return entities.Bid{}, ErrInvalidState
	}

	b := entities.Bid{
		ID:                uuid.NewString(),
		JobID:             jobID,
		MechanicID:        mechanicID,
		Amount:            amount,
		Message:           message,
		EstimatedDuration: estimatedDuration,
		Status:            entities.BidStatusPending,
		CreatedAt:         time.Now().UTC(),
	}
	created, err := u.bids.Create(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}

	u.publish(ctx, entities.EventBidSubmitted, jobID, job.CustomerID, entities.BidSubmittedPayload{
		BidID:      created.ID,
		JobID:      jobID,
		MechanicID: mechanicID,
		Amount:     amount,
	})
	return created, nil
}

// AcceptBid selects the winning bid for an open job. The job write is a
// compare-and-swap on the job's status and version, so two racing accepts
// resolve to exactly one winner; the loser gets ErrAlreadyAssigned and its
// bid stays pending. Every other pending sibling is rejected in the same
// operation. A winner withdrawn mid-accept rolls the job back to open, so
// MechanicID is only ever set while an accepted bid exists.
func (u *BidUseCase) AcceptBid(ctx context.Context, jobID, bidID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	bidID = strings.TrimSpace(bidID)
	if jobID == "" {
		return entities.Job{}, NewValidationError("job_id", "must not be empty")
	}
	if bidID == "" {
		return entities.Job{}, NewValidationError("bid_id", "must not be empty")
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Job{}, err
	}
	if bid.ID == "" {
		return entities.Job{}, ErrBidNotFound
	}
	if bid.JobID != jobID {
		return entities.Job{}, NewValidationError("bid_id", "bid does not belong to this job")
	}
	if bid.Status != entities.BidStatusPending {
		return entities.Job{}, ErrInvalidState
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusOpen {
		return entities.Job{}, ErrAlreadyAssigned
	}

	now := time.Now().UTC()
	next, ok := job.Apply(entities.JobEventBidAccepted, now)
	if !ok {
		return entities.Job{}, ErrIllegalTransition
	}
	next.MechanicID = bid.MechanicID
	next.Price = bid.Amount

	updated, err := u.jobs.Update(ctx, next, job.Version)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		// Conditional write failed: someone else accepted first.
		return entities.Job{}, ErrAlreadyAssigned
	}

	winner, err := u.bids.UpdateStatusIfPending(ctx, bid.ID, entities.BidStatusAccepted)
	if err != nil {
		log.Printf("[bid][usecase] accept: marking winner failed job_id=%s bid_id=%s err=%v", jobID, bid.ID, err)
		return entities.Job{}, err
	}
	if winner.ID == "" {
		// The bid was withdrawn between the read and the flip. Put the job
		// back on the market so the assignment never points at a dead bid.
		log.Printf("[bid][usecase] accept: winner no longer pending, reverting job_id=%s bid_id=%s", jobID, bid.ID)
		u.unassign(ctx, updated)
		return entities.Job{}, ErrInvalidState
	}
	u.publish(ctx, entities.EventBidAccepted, jobID, bid.MechanicID, entities.BidDecisionPayload{
		BidID:      bid.ID,
		JobID:      jobID,
		MechanicID: bid.MechanicID,
		Status:     entities.BidStatusAccepted,
	})

	siblings, err := u.bids.ListByJobID(ctx, jobID)
	if err != nil {
		log.Printf("[bid][usecase] accept: listing siblings failed job_id=%s err=%v", jobID, err)
		return updated, nil
	}
	for _, s := range siblings {
		if s.ID == bid.ID || s.Status != entities.BidStatusPending {
			continue
		}
		if _, err := u.bids.UpdateStatusIfPending(ctx, s.ID, entities.BidStatusRejected); err != nil {
			log.Printf("[bid][usecase] accept: rejecting sibling failed job_id=%s bid_id=%s err=%v", jobID, s.ID, err)
			continue
		}
		u.publish(ctx, entities.EventBidRejected, jobID, s.MechanicID, entities.BidDecisionPayload{
			BidID:      s.ID,
			JobID:      jobID,
			MechanicID: s.MechanicID,
			Status:     entities.BidStatusRejected,
		})
	}
	return updated, nil
}

// unassign reverts a just-scheduled job whose winning bid disappeared under
// the accept. A rollback failure is logged; the job CAS version has moved, so
// any later accept re-reads current state before touching it.
func (u *BidUseCase) unassign(ctx context.Context, job entities.Job) {
	reverted, ok := job.Apply(entities.JobEventScheduleDeclined, time.Now().UTC())
	if !ok {
		return
	}
	reverted.Price = 0
	if rolled, err := u.jobs.Update(ctx, reverted, job.Version); err != nil || rolled.ID == "" {
		log.Printf("[bid][usecase] accept: rollback failed job_id=%s err=%v", job.ID, err)
	}
}

func (u *BidUseCase) WithdrawBid(ctx context.Context, bidID string) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Bid{}, NewValidationError("bid_id", "must not be empty")
	}

	bid, err := u.bids.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if bid.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	if bid.Status != entities.BidStatusPending {
		return entities.Bid{}, ErrInvalidState
	}

	updated, err := u.bids.UpdateStatusIfPending(ctx, bidID, entities.BidStatusWithdrawn)
	if err != nil {
		return entities.Bid{}, err
	}
	if updated.ID == "" {
		return entities.Bid{}, ErrInvalidState
	}
	return updated, nil
}

func (u *BidUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, NewValidationError("job_id", "must not be empty")
	}
	return u.bids.ListByJobID(ctx, jobID)
}

func (u *BidUseCase) publish(ctx context.Context, eventType, jobID, recipientID string, payload any) {
	publishEvent(ctx, u.publisher, eventType, jobID, recipientID, payload)
}
