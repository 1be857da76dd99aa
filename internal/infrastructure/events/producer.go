package events

import (
	"context"
	"encoding/json"
	"log"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// Producer publishes domain event envelopes to the notifications topic.
// Messages are keyed by job id so every event of one job stays ordered on
// one partition.

type Producer struct {
	w *kafka.Writer
}

var _ interfaces.IEventPublisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, env entities.EventEnvelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   entities.PartitionKey(env.JobID),
		Value: value,
	})
}

func (p *Producer) Close() {
	if err := p.w.Close(); err != nil {
		log.Printf("[events][producer] close failed err=%v", err)
	}
}
