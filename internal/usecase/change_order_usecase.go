package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ChangeOrderDecision is the customer's answer to a pending change order.

type ChangeOrderDecision string

const (
	DecisionApprove ChangeOrderDecision = "approve"
	DecisionReject  ChangeOrderDecision = "reject"
)

const (
	defaultPaymentRetryBudget = 3
	paymentRetryBackoff       = 500 * time.Millisecond
	escrowCurrency            = "usd"
)

// IChangeOrderUseCase manages supplemental-work requests raised after a job
// starts: approval, escrow hold, payment release and expiry.

type IChangeOrderUseCase interface {
	Propose(ctx context.Context, jobID, title, description string, items []entities.LineItem, urgency entities.ChangeOrderUrgency, expiresAt *time.Time) (entities.ChangeOrder, error)
	Respond(ctx context.Context, changeOrderID string, decision ChangeOrderDecision) (entities.ChangeOrder, error)
	Release(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	CancelForJob(ctx context.Context, jobID string) error
	ReleaseForJob(ctx context.Context, jobID string) error
}

type ChangeOrderUseCase struct {
	changeOrders interfaces.IChangeOrderRepository
	jobs         interfaces.IJobRepository
	gateway      interfaces.IPaymentGateway
	publisher    interfaces.IEventPublisher
	retryBudget  int
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(changeOrders interfaces.IChangeOrderRepository, jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{
		changeOrders: changeOrders,
		jobs:         jobs,
		gateway:      gateway,
		publisher:    publisher,
		retryBudget:  defaultPaymentRetryBudget,
	}
}

func (u *ChangeOrderUseCase) Propose(ctx context.Context, jobID, title, description string, items []entities.LineItem, urgency entities.ChangeOrderUrgency, expiresAt *time.Time) (entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	title = strings.TrimSpace(title)
	if jobID == "" {
		return entities.ChangeOrder{}, NewValidationError("job_id", "must not be empty")
	}
	if title == "" {
		return entities.ChangeOrder{}, NewValidationError("title", "must not be empty")
	}
	if len(items) == 0 {
		return entities.ChangeOrder{}, NewValidationError("line_items", "at least one line item is required")
	}
	if urgency == "" {
		urgency = entities.ChangeOrderUrgencyNormal
	}
	if !entities.ValidChangeOrderUrgency(urgency) {
		return entities.ChangeOrder{}, NewValidationError("urgency", "must be one of low, normal, high, urgent")
	}

	normalized := make([]entities.LineItem, 0, len(items))
	for i, li := range items {
		if strings.TrimSpace(li.ServiceName) == "" {
			return entities.ChangeOrder{}, NewValidationError(fmt.Sprintf("line_items[%d].service_name", i), "must not be empty")
		}
		if !entities.ValidLineItemCategory(li.Category) {
			return entities.ChangeOrder{}, NewValidationError(fmt.Sprintf("line_items[%d].category", i), "must be one of labor, parts, materials, other")
		}
		if li.Quantity <= 0 {
			return entities.ChangeOrder{}, NewValidationError(fmt.Sprintf("line_items[%d].quantity", i), "must be a positive integer")
		}
		if li.UnitPrice <= 0 {
			return entities.ChangeOrder{}, NewValidationError(fmt.Sprintf("line_items[%d].unit_price", i), "must be greater than zero")
		}
		if li.ID == "" {
			li.ID = uuid.NewString()
		}
		normalized = append(normalized, entities.NormalizeLineItem(li))
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if job.ID == "" {
		return entities.ChangeOrder{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusInProgress {
		return entities.ChangeOrder{}, ErrInvalidState
	}

	now := time.Now().UTC()
	co := entities.ChangeOrder{
		ID:                        uuid.NewString(),
		JobID:                     jobID,
		Title:                     title,
		Description:               strings.TrimSpace(description),
		LineItems:                 normalized,
		TotalAmount:               entities.SumLineItems(normalized),
		Urgency:                   urgency,
		RequiresImmediateApproval: urgency == entities.ChangeOrderUrgencyUrgent,
		Status:                    entities.ChangeOrderStatusPending,
		CreatedAt:                 now,
		UpdatedAt:                 now,
		ExpiresAt:                 expiresAt,
	}
	created, err := u.changeOrders.Create(ctx, co)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	publishEvent(ctx, u.publisher, entities.EventChangeOrderCreated, jobID, job.CustomerID, entities.ChangeOrderPayload{
		ChangeOrderID: created.ID,
		JobID:         jobID,
		Status:        created.Status,
		TotalAmount:   created.TotalAmount,
	})
	return created, nil
}

// Respond applies the customer decision to a pending change order. Approval
// persists `approved` first and only then requests the escrow hold, so no
// lock or transaction spans the payment round trip; when the hold fails the
// change order stays approved and the call can be retried (the hold is
// idempotent by change order id).
func (u *ChangeOrderUseCase) Respond(ctx context.Context, changeOrderID string, decision ChangeOrderDecision) (entities.ChangeOrder, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.ChangeOrder{}, NewValidationError("change_order_id", "must not be empty")
	}
	if decision != DecisionApprove && decision != DecisionReject {
		return entities.ChangeOrder{}, NewValidationError("decision", "must be approve or reject")
	}

	co, err := u.getSwept(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	if decision == DecisionReject {
		if co.Status != entities.ChangeOrderStatusPending {
			return entities.ChangeOrder{}, ErrInvalidState
		}
		updated, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusPending, entities.ChangeOrderStatusRejected, "")
		if err != nil {
			return entities.ChangeOrder{}, err
		}
		if updated.ID == "" {
			return entities.ChangeOrder{}, ErrInvalidState
		}
		u.notifyMechanic(ctx, updated)
		return updated, nil
	}

	// approve: pending -> approved, or a retry on an approved order whose
	// previous hold attempt failed.
	switch co.Status {
	case entities.ChangeOrderStatusPending:
		approved, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusPending, entities.ChangeOrderStatusApproved, "")
		if err != nil {
			return entities.ChangeOrder{}, err
		}
		if approved.ID == "" {
			return entities.ChangeOrder{}, ErrInvalidState
		}
		co = approved
	case entities.ChangeOrderStatusApproved:
		// hold retry
	default:
		return entities.ChangeOrder{}, ErrInvalidState
	}

	intent, err := u.holdFunds(ctx, co)
	if err != nil {
		log.Printf("[changeorder][usecase] escrow hold failed change_order_id=%s err=%v", co.ID, err)
		return co, err
	}

	held, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusApproved, entities.ChangeOrderStatusEscrow, intent.ID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if held.ID == "" {
		return entities.ChangeOrder{}, ErrInvalidState
	}
	log.Printf("[changeorder][usecase] escrow held change_order_id=%s payment_intent_id=%s amount=%.2f", held.ID, intent.ID, held.TotalAmount)
	u.notifyMechanic(ctx, held)
	return held, nil
}

// Release captures the escrow hold once the underlying work is complete.
// A second call after success is a no-op returning the paid change order.
func (u *ChangeOrderUseCase) Release(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.ChangeOrder{}, NewValidationError("change_order_id", "must not be empty")
	}

	co, err := u.changeOrders.GetByID(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	if co.Status == entities.ChangeOrderStatusPaid {
		return co, nil
	}
	if co.Status != entities.ChangeOrderStatusEscrow {
		return entities.ChangeOrder{}, ErrInvalidState
	}

	if err := u.captureFunds(ctx, co); err != nil {
		log.Printf("[changeorder][usecase] release failed change_order_id=%s err=%v", co.ID, err)
		return co, err
	}

	paid, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusPaid, co.PaymentIntentID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if paid.ID == "" {
		// Someone else released concurrently; the capture is idempotent.
		current, err := u.changeOrders.GetByID(ctx, co.ID)
		if err != nil {
			return entities.ChangeOrder{}, err
		}
		return current, nil
	}
	u.notifyMechanic(ctx, paid)
	return paid, nil
}

// SweepExpired transitions every pending change order whose deadline passed
// to expired. Safe to run repeatedly and concurrently: the conditional write
// only fires while the order is still pending.
func (u *ChangeOrderUseCase) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	pending, err := u.changeOrders.ListPending(ctx)
	if err != nil {
		return 0, err
	}
	swept := 0
	for _, co := range pending {
		if !co.Expired(now) {
			continue
		}
		updated, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusPending, entities.ChangeOrderStatusExpired, "")
		if err != nil {
			log.Printf("[changeorder][usecase] sweep failed change_order_id=%s err=%v", co.ID, err)
			continue
		}
		if updated.ID != "" {
			swept++
			u.notifyMechanic(ctx, updated)
		}
	}
	return swept, nil
}

func (u *ChangeOrderUseCase) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeOrder{}, NewValidationError("change_order_id", "must not be empty")
	}
	return u.getSwept(ctx, id)
}

// ListByJobID lists a job's change orders with the lazy expiry sweep applied
// on the read path.
func (u *ChangeOrderUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, NewValidationError("job_id", "must not be empty")
	}
	list, err := u.changeOrders.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i, co := range list {
		if !co.Expired(now) {
			continue
		}
		updated, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusPending, entities.ChangeOrderStatusExpired, "")
		if err != nil || updated.ID == "" {
			continue
		}
		list[i] = updated
	}
	return list, nil
}

// CancelForJob resolves every non-terminal change order of a job that is
// being cancelled. Escrow holds are voided at the provider before the order
// is marked cancelled, so held funds are never orphaned. A void failure
// aborts the whole cancellation.
func (u *ChangeOrderUseCase) CancelForJob(ctx context.Context, jobID string) error {
	list, err := u.changeOrders.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	for _, co := range list {
		if entities.TerminalChangeOrderStatus(co.Status) {
			continue
		}
		if co.Status == entities.ChangeOrderStatusEscrow {
			if err := u.voidFunds(ctx, co); err != nil {
				return err
			}
		}
		updated, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, co.Status, entities.ChangeOrderStatusCancelled, co.PaymentIntentID)
		if err != nil {
			return err
		}
		if updated.ID != "" {
			u.notifyMechanic(ctx, updated)
		}
	}
	return nil
}

// ReleaseForJob captures every escrow hold of a completed job. Failures are
// logged and left in escrow for an explicit Release retry; they do not block
// the job completion that triggered them.
func (u *ChangeOrderUseCase) ReleaseForJob(ctx context.Context, jobID string) error {
	list, err := u.changeOrders.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	for _, co := range list {
		if co.Status != entities.ChangeOrderStatusEscrow {
			continue
		}
		if _, err := u.Release(ctx, co.ID); err != nil {
			log.Printf("[changeorder][usecase] release-for-job failed job_id=%s change_order_id=%s err=%v", jobID, co.ID, err)
		}
	}
	return nil
}

func (u *ChangeOrderUseCase) getSwept(ctx context.Context, id string) (entities.ChangeOrder, error) {
	co, err := u.changeOrders.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	if co.Expired(time.Now().UTC()) {
		expired, err := u.changeOrders.UpdateStatusIfCurrent(ctx, co.ID, entities.ChangeOrderStatusPending, entities.ChangeOrderStatusExpired, "")
		if err != nil {
			return entities.ChangeOrder{}, err
		}
		if expired.ID != "" {
			return expired, nil
		}
	}
	return co, nil
}

// holdFunds places the manual-capture authorization backing the escrow. The
// idempotency key is derived from the change order id, so retries of a
// partially-failed approval never double-hold.
func (u *ChangeOrderUseCase) holdFunds(ctx context.Context, co entities.ChangeOrder) (interfaces.PaymentIntent, error) {
	if u.gateway == nil {
		return interfaces.PaymentIntent{}, fmt.Errorf("%w: payment gateway not configured", ErrPaymentFailed)
	}
	req := interfaces.PaymentIntentRequest{
		AmountCents:     entities.AmountToCents(co.TotalAmount),
		Currency:        escrowCurrency,
		CaptureManually: true,
		IdempotencyKey:  "co-hold-" + co.ID,
		Metadata: map[string]string{
			"change_order_id": co.ID,
			"job_id":          co.JobID,
		},
	}

	var lastErr error
	for attempt := 0; attempt < u.retryBudget; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, paymentRetryBackoff); err != nil {
				break
			}
		}
		intent, err := u.gateway.CreatePaymentIntent(ctx, req)
		if err == nil {
			return intent, nil
		}
		// A timed-out create is safe to re-issue: the idempotency key makes
		// the provider hand back the intent from any attempt that landed.
		lastErr = err
	}
	return interfaces.PaymentIntent{}, fmt.Errorf("%w: %v", ErrPaymentFailed, lastErr)
}

func (u *ChangeOrderUseCase) captureFunds(ctx context.Context, co entities.ChangeOrder) error {
	if u.gateway == nil {
		return fmt.Errorf("%w: payment gateway not configured", ErrPaymentFailed)
	}
	key := "co-capture-" + co.ID

	var lastErr error
	for attempt := 0; attempt < u.retryBudget; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, paymentRetryBackoff); err != nil {
				break
			}
		}
		if _, err := u.gateway.CapturePaymentIntent(ctx, co.PaymentIntentID, key); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if isTimeout(lastErr) {
			if current, qerr := u.gateway.GetPaymentIntent(ctx, co.PaymentIntentID); qerr == nil && current.Status == "succeeded" {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrPaymentFailed, lastErr)
}

func (u *ChangeOrderUseCase) voidFunds(ctx context.Context, co entities.ChangeOrder) error {
	if u.gateway == nil {
		return fmt.Errorf("%w: payment gateway not configured", ErrPaymentFailed)
	}
	key := "co-void-" + co.ID

	var lastErr error
	for attempt := 0; attempt < u.retryBudget; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, paymentRetryBackoff); err != nil {
				break
			}
		}
		if _, err := u.gateway.CancelPaymentIntent(ctx, co.PaymentIntentID, key); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if isTimeout(lastErr) {
			if current, qerr := u.gateway.GetPaymentIntent(ctx, co.PaymentIntentID); qerr == nil && current.Status == "canceled" {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrPaymentFailed, lastErr)
}

func (u *ChangeOrderUseCase) notifyMechanic(ctx context.Context, co entities.ChangeOrder) {
	job, err := u.jobs.GetByID(ctx, co.JobID)
	if err != nil || job.ID == "" || job.MechanicID == "" {
		return
	}
	publishEvent(ctx, u.publisher, entities.EventChangeOrderUpdated, co.JobID, job.MechanicID, entities.ChangeOrderPayload{
		ChangeOrderID: co.ID,
		JobID:         co.JobID,
		Status:        co.Status,
		TotalAmount:   co.TotalAmount,
	})
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
