package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Update is version-guarded: the write only succeeds when the stored item
// still carries expectedVersion, otherwise the zero Job is returned. That
// compare-and-swap is what serializes concurrent accept-bid calls per job.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job, expectedVersion int64) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
}
