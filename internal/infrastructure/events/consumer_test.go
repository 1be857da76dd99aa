package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"mechmarket/internal/domain/entities"
)

func TestDeliver(t *testing.T) {
	restore := deliveryBackoff
	deliveryBackoff = time.Millisecond
	defer func() { deliveryBackoff = restore }()

	env := entities.EventEnvelope{EventID: "evt-1", EventType: entities.EventBidSubmitted}

	t.Run("transient failure is retried in place", func(t *testing.T) {
		attempts := 0
		h := func(_ context.Context, _ entities.EventEnvelope) error {
			attempts++
			if attempts < 3 {
				return errors.New("store unavailable")
			}
			return nil
		}

		if !deliver(context.Background(), h, env) {
			t.Fatalf("expected commit after eventual success")
		}
		if attempts != 3 {
			t.Fatalf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("poison message is dropped after the budget", func(t *testing.T) {
		attempts := 0
		h := func(_ context.Context, _ entities.EventEnvelope) error {
			attempts++
			return errors.New("always fails")
		}

		if !deliver(context.Background(), h, env) {
			t.Fatalf("expected commit so the partition keeps moving")
		}
		if attempts != deliveryBudget {
			t.Fatalf("expected %d attempts, got %d", deliveryBudget, attempts)
		}
	})

	t.Run("shutdown during backoff leaves the offset uncommitted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		h := func(_ context.Context, _ entities.EventEnvelope) error {
			attempts++
			cancel()
			return errors.New("store unavailable")
		}

		if deliver(ctx, h, env) {
			t.Fatalf("expected no commit when the context ends mid-retry")
		}
		if attempts != 1 {
			t.Fatalf("expected 1 attempt, got %d", attempts)
		}
	})
}
