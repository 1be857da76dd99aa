package usecase

import (
	"context"
	"errors"
	"testing"

	"mechmarket/internal/domain/entities"
	mock_interfaces "mechmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubmitBid(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewBidUseCase(mock_interfaces.NewMockIBidRepository(ctrl), mock_interfaces.NewMockIJobRepository(ctrl), nil)

		cases := []struct {
			name     string
			jobID    string
			mechanic string
			amount   float64
			message  string
			duration int
			field    string
		}{
			{"empty job id", " ", "mech-1", 85, "I can fix this today and guarantee the work", 120, "job_id"},
			{"empty mechanic", "job-1", "", 85, "I can fix this today and guarantee the work", 120, "mechanic_id"},
			{"zero amount", "job-1", "mech-1", 0, "I can fix this today and guarantee the work", 120, "amount"},
			{"negative amount", "job-1", "mech-1", -5, "I can fix this today and guarantee the work", 120, "amount"},
			{"short message", "job-1", "mech-1", 85, "too short", 120, "message"},
			{"zero duration", "job-1", "mech-1", 85, "I can fix this today and guarantee the work", 0, "estimated_duration"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.SubmitBid(context.Background(), tc.jobID, tc.mechanic, tc.amount, tc.message, tc.duration)
				ve, ok := AsValidationError(err)
				if !ok {
					t.Fatalf("expected validation error, got %v", err)
				}
				if ve.Field != tc.field {
					t.Fatalf("expected field %s, got %s", tc.field, ve.Field)
				}
			})
		}
	})

	t.Run("job not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled}, nil)

		_, err := uc.SubmitBid(context.Background(), "job-1", "mech-1", 85, "I can fix this today and guarantee the work", 120)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.SubmitBid(context.Background(), "job-1", "mech-1", 85, "I can fix this today and guarantee the work", 120)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewBidUseCase(bids, jobs, publisher)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusOpen, CustomerID: "cust-1"}, nil)
		bids.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil },
		)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		bid, err := uc.SubmitBid(context.Background(), "job-1", "mech-1", 85, "I can fix this today and guarantee the work", 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.Status != entities.BidStatusPending {
			t.Fatalf("expected pending, got %s", bid.Status)
		}
		if bid.Amount != 85 || bid.EstimatedDuration != 120 || bid.MechanicID != "mech-1" {
			t.Fatalf("unexpected bid: %+v", bid)
		}
		if bid.ID == "" {
			t.Fatalf("expected a generated bid id")
		}
	})
}

func TestAcceptBid(t *testing.T) {
	openJob := func() entities.Job {
		return entities.Job{ID: "job-1", Status: entities.JobStatusOpen, CustomerID: "cust-1", Version: 3}
	}
	pendingBid := func(id, mech string, amount float64) entities.Bid {
		return entities.Bid{ID: id, JobID: "job-1", MechanicID: mech, Amount: amount, Status: entities.BidStatusPending}
	}

	t.Run("winner schedules the job and rejects siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewBidUseCase(bids, jobs, publisher)

		b1 := pendingBid("bid-1", "mech-1", 85)
		b2 := pendingBid("bid-2", "mech-2", 95)

		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(b1, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		jobs.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, j entities.Job, _ int64) (entities.Job, error) { return j, nil },
		)
		bids.EXPECT().UpdateStatusIfPending(gomock.Any(), "bid-1", entities.BidStatusAccepted).Return(b1, nil)
		bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{b1, b2}, nil)
		bids.EXPECT().UpdateStatusIfPending(gomock.Any(), "bid-2", entities.BidStatusRejected).Return(b2, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		job, err := uc.AcceptBid(context.Background(), "job-1", "bid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusScheduled {
			t.Fatalf("expected scheduled, got %s", job.Status)
		}
		if job.MechanicID != "mech-1" {
			t.Fatalf("expected winning mechanic assigned, got %q", job.MechanicID)
		}
		if job.Price != 85 {
			t.Fatalf("expected job price 85, got %v", job.Price)
		}
		if len(job.Timeline) != 1 || job.Timeline[0].Event != entities.JobEventBidAccepted {
			t.Fatalf("expected bid_accepted timeline entry, got %+v", job.Timeline)
		}
	})

	t.Run("concurrent accept loses the compare-and-swap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		b2 := pendingBid("bid-2", "mech-2", 95)

		bids.EXPECT().GetByID(gomock.Any(), "bid-2").Return(b2, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		// Another accept won between the read and the write.
		jobs.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).Return(entities.Job{}, nil)

		_, err := uc.AcceptBid(context.Background(), "job-1", "bid-2")
		if !errors.Is(err, ErrAlreadyAssigned) {
			t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
		}
		// No bid status write happened: bid-2 stays pending for the winner's
		// sibling sweep to reject.
	})

	t.Run("winner withdrawn during accept rolls the job back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		b1 := pendingBid("bid-1", "mech-1", 85)

		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(b1, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(openJob(), nil)
		jobs.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, j entities.Job, v int64) (entities.Job, error) {
				j.Version = v + 1
				return j, nil
			},
		)
		// The mechanic withdrew between the read and the flip: the conditional
		// write reports the lost condition as a zero bid.
		bids.EXPECT().UpdateStatusIfPending(gomock.Any(), "bid-1", entities.BidStatusAccepted).Return(entities.Bid{}, nil)
		jobs.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(
			func(_ context.Context, j entities.Job, v int64) (entities.Job, error) {
				if j.Status != entities.JobStatusOpen {
					t.Fatalf("expected rollback to open, got %s", j.Status)
				}
				if j.MechanicID != "" {
					t.Fatalf("expected mechanic cleared on rollback, got %q", j.MechanicID)
				}
				if j.Price != 0 {
					t.Fatalf("expected price cleared on rollback, got %v", j.Price)
				}
				j.Version = v + 1
				return j, nil
			},
		)

		_, err := uc.AcceptBid(context.Background(), "job-1", "bid-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("job no longer open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid("bid-1", "mech-1", 85), nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled}, nil)

		_, err := uc.AcceptBid(context.Background(), "job-1", "bid-1")
		if !errors.Is(err, ErrAlreadyAssigned) {
			t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
		}
	})

	t.Run("bid belongs to another job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		other := entities.Bid{ID: "bid-9", JobID: "job-9", Status: entities.BidStatusPending}
		bids.EXPECT().GetByID(gomock.Any(), "bid-9").Return(other, nil)

		_, err := uc.AcceptBid(context.Background(), "job-1", "bid-9")
		if _, ok := AsValidationError(err); !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("bid already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewBidUseCase(bids, jobs, nil)

		withdrawn := entities.Bid{ID: "bid-1", JobID: "job-1", Status: entities.BidStatusWithdrawn}
		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(withdrawn, nil)

		_, err := uc.AcceptBid(context.Background(), "job-1", "bid-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestWithdrawBid(t *testing.T) {
	t.Run("pending bid is withdrawn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, mock_interfaces.NewMockIJobRepository(ctrl), nil)

		pending := entities.Bid{ID: "bid-1", JobID: "job-1", Status: entities.BidStatusPending}
		withdrawn := pending
		withdrawn.Status = entities.BidStatusWithdrawn

		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pending, nil)
		bids.EXPECT().UpdateStatusIfPending(gomock.Any(), "bid-1", entities.BidStatusWithdrawn).Return(withdrawn, nil)

		got, err := uc.WithdrawBid(context.Background(), "bid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BidStatusWithdrawn {
			t.Fatalf("expected withdrawn, got %s", got.Status)
		}
	})

	t.Run("accepted bid cannot be withdrawn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewBidUseCase(bids, mock_interfaces.NewMockIJobRepository(ctrl), nil)

		bids.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.Bid{ID: "bid-1", Status: entities.BidStatusAccepted}, nil)

		_, err := uc.WithdrawBid(context.Background(), "bid-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}
