package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid.
//
// UpdateStatusIfPending performs a conditional pending -> status write and
// returns the zero Bid when the bid was no longer pending (already decided
// or withdrawn).

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error)
	UpdateStatusIfPending(ctx context.Context, id string, status entities.BidStatus) (entities.Bid, error)
}
