package ports

import (
	"context"

	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/kernel"
)

// DonateRequestRepository defines the persistence contract for claims on donated goods.
type DonateRequestRepository interface {
	Add(ctx context.Context, aggregate *donaterequest.DonateRequest) error
	Update(ctx context.Context, aggregate *donaterequest.DonateRequest) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error)

	// HasActiveRequest reports whether requesterID holds a Pending or Approved
	// request for itemID. Callers hold the item lock so the answer stays true
	// until they commit.
	HasActiveRequest(ctx context.Context, itemID kernel.UUID, requesterID kernel.UUID) (bool, error)

	Find(ctx context.Context, filter ListFilter) ([]*donaterequest.DonateRequest, error)
}
