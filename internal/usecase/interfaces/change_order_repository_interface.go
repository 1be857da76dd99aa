package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
//
// UpdateStatusIfCurrent writes status (and optionally the payment intent id)
// only when the stored item still has the expected current status; otherwise
// the zero ChangeOrder is returned. Precondition failures therefore never
// partially persist.

type IChangeOrderRepository interface {
	Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	ListPending(ctx context.Context) ([]entities.ChangeOrder, error)
	UpdateStatusIfCurrent(ctx context.Context, id string, current, next entities.ChangeOrderStatus, paymentIntentID string) (entities.ChangeOrder, error)
}
