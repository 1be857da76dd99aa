package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mechmarket/internal/domain/entities"

	"github.com/segmentio/kafka-go"
)

// Handler must return nil only when the envelope was processed and the
// offset may be committed.
type Handler func(ctx context.Context, env entities.EventEnvelope) error

const deliveryBudget = 5

var deliveryBackoff = time.Second

// Consumer reads event envelopes from the notifications topic with manual
// offset commits. A failed handler is retried in place with backoff before
// the offset advances; commits are cumulative per partition, so advancing
// past a failed message would drop it for good. A message that exhausts the
// retry budget is dropped loudly so one poison envelope cannot wedge the
// partition. The notification store absorbs the resulting redeliveries.

type Consumer struct {
	r *kafka.Reader
}

func NewConsumer(brokers []string, group, topic string) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        group,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10e6,
			CommitInterval: 0, // manual commit
		}),
	}
}

func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}

		var env entities.EventEnvelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			log.Printf("[events][consumer] bad envelope offset=%d err=%v", m.Offset, err)
			// Poison message; commit past it.
			if err := c.r.CommitMessages(ctx, m); err != nil {
				return err
			}
			continue
		}

		if !deliver(ctx, h, env) {
			return nil
		}
		if err := c.r.CommitMessages(ctx, m); err != nil {
			return err
		}
	}
}

// deliver invokes h with bounded in-place retries. It reports whether the
// message may be committed; false only when ctx ended during a backoff, in
// which case the uncommitted offset is re-read on the next start.
func deliver(ctx context.Context, h Handler, env entities.EventEnvelope) bool {
	for attempt := 1; ; attempt++ {
		err := h(ctx, env)
		if err == nil {
			return true
		}
		if attempt >= deliveryBudget {
			log.Printf("[events][consumer] dropping event after %d attempts event_id=%s type=%s err=%v", attempt, env.EventID, env.EventType, err)
			return true
		}
		log.Printf("[events][consumer] handler failed, retrying event_id=%s type=%s attempt=%d err=%v", env.EventID, env.EventType, attempt, err)

		t := time.NewTimer(deliveryBackoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return false
		case <-t.C:
		}
	}
}
