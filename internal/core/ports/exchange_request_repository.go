package ports

import (
	"context"

	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
)

// ExchangeRequestRepository defines the persistence contract for exchange offers.
type ExchangeRequestRepository interface {
	Add(ctx context.Context, aggregate *exchangerequest.ExchangeRequest) error
	Update(ctx context.Context, aggregate *exchangerequest.ExchangeRequest) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*exchangerequest.ExchangeRequest, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*exchangerequest.ExchangeRequest, error)

	Find(ctx context.Context, filter ListFilter) ([]*exchangerequest.ExchangeRequest, error)
}
