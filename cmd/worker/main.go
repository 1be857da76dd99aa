package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"mechmarket/internal/adapter/notification"
	repository "mechmarket/internal/adapter/persistence/repository"
	"mechmarket/internal/config"
	"mechmarket/internal/infrastructure/database"
	"mechmarket/internal/infrastructure/events"
	"mechmarket/internal/usecase"
)

// The worker owns the two background duties of the marketplace:
//   - draining the notifications topic into the per-user redis feeds
//   - expiring pending change orders that passed their deadline

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := notification.NewRedisStore(notification.New(cfg.RedisAddr))
	notifications := usecase.NewNotificationUseCase(store)

	ddb := database.ConnectDynamoDB()
	changeOrderRepo := repository.NewChangeOrderDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)
	changeOrders := usecase.NewChangeOrderUseCase(changeOrderRepo, jobRepo, nil, nil)

	go runSweeper(ctx, changeOrders, cfg.SweepInterval)

	consumer := events.NewConsumer(cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.NotificationsTopic)
	log.Printf("[worker] consuming topic=%s group=%s", cfg.NotificationsTopic, cfg.ConsumerGroup)
	if err := consumer.Start(ctx, notifications.Record); err != nil {
		log.Fatalf("[worker] consumer stopped: %v", err)
	}
}

func runSweeper(ctx context.Context, changeOrders usecase.IChangeOrderUseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := changeOrders.SweepExpired(ctx, time.Now().UTC())
			if err != nil {
				log.Printf("[worker][sweep] failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[worker][sweep] expired=%d", n)
			}
		}
	}
}
