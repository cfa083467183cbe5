package ports

import (
	"context"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/purchaserequest"
)

// PurchaseRequestRepository defines the persistence contract for purchases.
// Purchases are never deleted; cancelled ones stay as history.
type PurchaseRequestRepository interface {
	Add(ctx context.Context, aggregate *purchaserequest.PurchaseRequest) error
	Update(ctx context.Context, aggregate *purchaserequest.PurchaseRequest) error
	Get(ctx context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error)

	Find(ctx context.Context, filter ListFilter) ([]*purchaserequest.PurchaseRequest, error)
}
