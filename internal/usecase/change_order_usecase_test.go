package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"
	mock_interfaces "mechmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type changeOrderMocks struct {
	repo      *mock_interfaces.MockIChangeOrderRepository
	jobs      *mock_interfaces.MockIJobRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	publisher *mock_interfaces.MockIEventPublisher
}

func newChangeOrderUC(ctrl *gomock.Controller) (*ChangeOrderUseCase, changeOrderMocks) {
	m := changeOrderMocks{
		repo:      mock_interfaces.NewMockIChangeOrderRepository(ctrl),
		jobs:      mock_interfaces.NewMockIJobRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		publisher: mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewChangeOrderUseCase(m.repo, m.jobs, m.gateway, m.publisher)
	// Keep failure tests fast: a single attempt, no backoff sleeps.
	uc.retryBudget = 1
	return uc, m
}

func inProgressJob() entities.Job {
	return entities.Job{ID: "job-1", Status: entities.JobStatusInProgress, CustomerID: "cust-1", MechanicID: "mech-1"}
}

func TestProposeChangeOrder(t *testing.T) {
	t.Run("total derives from line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) { return co, nil },
		)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		items := []entities.LineItem{
			{ServiceName: "Brake fluid flush", Category: entities.LineItemCategoryLabor, Quantity: 1, UnitPrice: 45},
		}
		co, err := uc.Propose(context.Background(), "job-1", "Brake fluid is contaminated", "", items, entities.ChangeOrderUrgencyNormal, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if co.Status != entities.ChangeOrderStatusPending {
			t.Fatalf("expected pending, got %s", co.Status)
		}
		if co.TotalAmount != 45 {
			t.Fatalf("expected total 45, got %v", co.TotalAmount)
		}
		if co.LineItems[0].TotalPrice != 45 {
			t.Fatalf("expected line total 45, got %v", co.LineItems[0].TotalPrice)
		}
		if co.RequiresImmediateApproval {
			t.Fatalf("normal urgency must not require immediate approval")
		}
	})

	t.Run("urgent proposals require immediate approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) { return co, nil },
		)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		items := []entities.LineItem{{ServiceName: "Coolant hose", Category: entities.LineItemCategoryParts, Quantity: 2, UnitPrice: 20}}
		co, err := uc.Propose(context.Background(), "job-1", "Hose is cracked", "", items, entities.ChangeOrderUrgencyUrgent, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !co.RequiresImmediateApproval {
			t.Fatalf("urgent urgency must require immediate approval")
		}
		if co.TotalAmount != 40 {
			t.Fatalf("expected total 40, got %v", co.TotalAmount)
		}
	})

	t.Run("line item validation is indexed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newChangeOrderUC(ctrl)

		items := []entities.LineItem{
			{ServiceName: "Valid", Category: entities.LineItemCategoryLabor, Quantity: 1, UnitPrice: 10},
			{ServiceName: "Broken", Category: entities.LineItemCategoryLabor, Quantity: 0, UnitPrice: 10},
		}
		_, err := uc.Propose(context.Background(), "job-1", "Title", "", items, entities.ChangeOrderUrgencyNormal, nil)
		ve, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
		if ve.Field != "line_items[1].quantity" {
			t.Fatalf("expected line_items[1].quantity, got %s", ve.Field)
		}
	})

	t.Run("job must be in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled}, nil)

		items := []entities.LineItem{{ServiceName: "Anything", Category: entities.LineItemCategoryOther, Quantity: 1, UnitPrice: 5}}
		_, err := uc.Propose(context.Background(), "job-1", "Title", "", items, entities.ChangeOrderUrgencyNormal, nil)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestRespondChangeOrder(t *testing.T) {
	pendingCO := func() entities.ChangeOrder {
		return entities.ChangeOrder{ID: "co-1", JobID: "job-1", TotalAmount: 45, Status: entities.ChangeOrderStatusPending}
	}

	t.Run("approve holds escrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := pendingCO()
		approved := co
		approved.Status = entities.ChangeOrderStatusApproved
		escrow := approved
		escrow.Status = entities.ChangeOrderStatusEscrow
		escrow.PaymentIntentID = "pi_1"

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusApproved, "").Return(approved, nil)
		m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntent, error) {
				if req.AmountCents != 4500 {
					t.Fatalf("expected 4500 cents, got %d", req.AmountCents)
				}
				if !req.CaptureManually {
					t.Fatalf("escrow hold must be a manual-capture intent")
				}
				if req.IdempotencyKey != "co-hold-co-1" {
					t.Fatalf("unexpected idempotency key %s", req.IdempotencyKey)
				}
				return interfaces.PaymentIntent{ID: "pi_1", Status: "requires_capture"}, nil
			},
		)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusApproved, entities.ChangeOrderStatusEscrow, "pi_1").Return(escrow, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Respond(context.Background(), "co-1", DecisionApprove)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusEscrow {
			t.Fatalf("expected escrow, got %s", got.Status)
		}
		if got.PaymentIntentID != "pi_1" {
			t.Fatalf("expected payment intent recorded, got %q", got.PaymentIntentID)
		}
	})

	t.Run("reject is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := pendingCO()
		rejected := co
		rejected.Status = entities.ChangeOrderStatusRejected

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusRejected, "").Return(rejected, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Respond(context.Background(), "co-1", DecisionReject)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusRejected {
			t.Fatalf("expected rejected, got %s", got.Status)
		}
	})

	t.Run("hold failure leaves the order approved and is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := pendingCO()
		approved := co
		approved.Status = entities.ChangeOrderStatusApproved

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusApproved, "").Return(approved, nil)
		m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(interfaces.PaymentIntent{}, errors.New("card_declined"))

		got, err := uc.Respond(context.Background(), "co-1", DecisionApprove)
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("expected ErrPaymentFailed, got %v", err)
		}
		if got.Status != entities.ChangeOrderStatusApproved {
			t.Fatalf("expected approved after hold failure, got %s", got.Status)
		}
	})

	t.Run("hold timeout retries the create with the same key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)
		uc.retryBudget = 2

		co := pendingCO()
		approved := co
		approved.Status = entities.ChangeOrderStatusApproved
		escrow := approved
		escrow.Status = entities.ChangeOrderStatusEscrow
		escrow.PaymentIntentID = "pi_1"

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusApproved, "").Return(approved, nil)
		gomock.InOrder(
			m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(interfaces.PaymentIntent{}, context.DeadlineExceeded),
			m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntent, error) {
					if req.IdempotencyKey != "co-hold-co-1" {
						t.Fatalf("retry must reuse the idempotency key, got %s", req.IdempotencyKey)
					}
					return interfaces.PaymentIntent{ID: "pi_1", Status: "requires_capture"}, nil
				},
			),
		)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusApproved, entities.ChangeOrderStatusEscrow, "pi_1").Return(escrow, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Respond(context.Background(), "co-1", DecisionApprove)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusEscrow {
			t.Fatalf("expected escrow, got %s", got.Status)
		}
	})

	t.Run("approve retry on an approved order re-attempts the hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		approved := pendingCO()
		approved.Status = entities.ChangeOrderStatusApproved
		escrow := approved
		escrow.Status = entities.ChangeOrderStatusEscrow
		escrow.PaymentIntentID = "pi_1"

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(approved, nil)
		m.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(interfaces.PaymentIntent{ID: "pi_1", Status: "requires_capture"}, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusApproved, entities.ChangeOrderStatusEscrow, "pi_1").Return(escrow, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Respond(context.Background(), "co-1", DecisionApprove)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusEscrow {
			t.Fatalf("expected escrow, got %s", got.Status)
		}
	})

	t.Run("expired order rejects any decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		past := time.Now().UTC().Add(-time.Hour)
		co := pendingCO()
		co.ExpiresAt = &past
		expired := co
		expired.Status = entities.ChangeOrderStatusExpired

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusExpired, "").Return(expired, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := uc.Respond(context.Background(), "co-1", DecisionApprove)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestReleaseChangeOrder(t *testing.T) {
	escrowCO := func() entities.ChangeOrder {
		return entities.ChangeOrder{ID: "co-1", JobID: "job-1", TotalAmount: 45, Status: entities.ChangeOrderStatusEscrow, PaymentIntentID: "pi_1"}
	}

	t.Run("capture marks the order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := escrowCO()
		paid := co
		paid.Status = entities.ChangeOrderStatusPaid

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.gateway.EXPECT().CapturePaymentIntent(gomock.Any(), "pi_1", "co-capture-co-1").Return(interfaces.PaymentIntent{ID: "pi_1", Status: "succeeded"}, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusPaid, "pi_1").Return(paid, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Release(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("release is idempotent once paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		paid := escrowCO()
		paid.Status = entities.ChangeOrderStatusPaid

		// No gateway call, no status write.
		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(paid, nil)

		got, err := uc.Release(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("release from pending is illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		pending := entities.ChangeOrder{ID: "co-1", JobID: "job-1", Status: entities.ChangeOrderStatusPending}
		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(pending, nil)

		_, err := uc.Release(context.Background(), "co-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("capture timeout re-queries the intent before failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := escrowCO()
		paid := co
		paid.Status = entities.ChangeOrderStatusPaid

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		// The capture call times out but actually landed on the provider side.
		m.gateway.EXPECT().CapturePaymentIntent(gomock.Any(), "pi_1", "co-capture-co-1").Return(interfaces.PaymentIntent{}, context.DeadlineExceeded)
		m.gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1").Return(interfaces.PaymentIntent{ID: "pi_1", Status: "succeeded"}, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusPaid, "pi_1").Return(paid, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		got, err := uc.Release(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("concurrent release converges on the paid order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		co := escrowCO()
		paid := co
		paid.Status = entities.ChangeOrderStatusPaid

		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(co, nil)
		m.gateway.EXPECT().CapturePaymentIntent(gomock.Any(), "pi_1", "co-capture-co-1").Return(interfaces.PaymentIntent{ID: "pi_1", Status: "succeeded"}, nil)
		// Another release already flipped the status.
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusPaid, "pi_1").Return(entities.ChangeOrder{}, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(paid, nil)

		got, err := uc.Release(context.Background(), "co-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ChangeOrderStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})
}

func TestSweepExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newChangeOrderUC(ctrl)

	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	due := entities.ChangeOrder{ID: "co-1", JobID: "job-1", Status: entities.ChangeOrderStatusPending, ExpiresAt: &past}
	notDue := entities.ChangeOrder{ID: "co-2", JobID: "job-1", Status: entities.ChangeOrderStatusPending, ExpiresAt: &future}
	noDeadline := entities.ChangeOrder{ID: "co-3", JobID: "job-1", Status: entities.ChangeOrderStatusPending}

	expired := due
	expired.Status = entities.ChangeOrderStatusExpired

	m.repo.EXPECT().ListPending(gomock.Any()).Return([]entities.ChangeOrder{due, notDue, noDeadline}, nil)
	m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusExpired, "").Return(expired, nil)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	n, err := uc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
}

func TestCancelForJob(t *testing.T) {
	t.Run("voids escrow holds and cancels open orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		held := entities.ChangeOrder{ID: "co-1", JobID: "job-1", Status: entities.ChangeOrderStatusEscrow, PaymentIntentID: "pi_1"}
		pending := entities.ChangeOrder{ID: "co-2", JobID: "job-1", Status: entities.ChangeOrderStatusPending}
		done := entities.ChangeOrder{ID: "co-3", JobID: "job-1", Status: entities.ChangeOrderStatusPaid}

		cancelledHeld := held
		cancelledHeld.Status = entities.ChangeOrderStatusCancelled
		cancelledPending := pending
		cancelledPending.Status = entities.ChangeOrderStatusCancelled

		m.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ChangeOrder{held, pending, done}, nil)
		m.gateway.EXPECT().CancelPaymentIntent(gomock.Any(), "pi_1", "co-void-co-1").Return(interfaces.PaymentIntent{ID: "pi_1", Status: "canceled"}, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusCancelled, "pi_1").Return(cancelledHeld, nil)
		m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-2", entities.ChangeOrderStatusPending, entities.ChangeOrderStatusCancelled, "").Return(cancelledPending, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		if err := uc.CancelForJob(context.Background(), "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("void failure aborts the cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChangeOrderUC(ctrl)

		held := entities.ChangeOrder{ID: "co-1", JobID: "job-1", Status: entities.ChangeOrderStatusEscrow, PaymentIntentID: "pi_1"}

		m.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ChangeOrder{held}, nil)
		m.gateway.EXPECT().CancelPaymentIntent(gomock.Any(), "pi_1", "co-void-co-1").Return(interfaces.PaymentIntent{}, errors.New("provider unavailable"))

		err := uc.CancelForJob(context.Background(), "job-1")
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("expected ErrPaymentFailed, got %v", err)
		}
	})
}

func TestReleaseForJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newChangeOrderUC(ctrl)

	held := entities.ChangeOrder{ID: "co-1", JobID: "job-1", Status: entities.ChangeOrderStatusEscrow, PaymentIntentID: "pi_1"}
	rejected := entities.ChangeOrder{ID: "co-2", JobID: "job-1", Status: entities.ChangeOrderStatusRejected}
	paid := held
	paid.Status = entities.ChangeOrderStatusPaid

	m.repo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ChangeOrder{held, rejected}, nil)
	m.repo.EXPECT().GetByID(gomock.Any(), "co-1").Return(held, nil)
	m.gateway.EXPECT().CapturePaymentIntent(gomock.Any(), "pi_1", "co-capture-co-1").Return(interfaces.PaymentIntent{ID: "pi_1", Status: "succeeded"}, nil)
	m.repo.EXPECT().UpdateStatusIfCurrent(gomock.Any(), "co-1", entities.ChangeOrderStatusEscrow, entities.ChangeOrderStatusPaid, "pi_1").Return(paid, nil)
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(inProgressJob(), nil).AnyTimes()
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	if err := uc.ReleaseForJob(context.Background(), "job-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
