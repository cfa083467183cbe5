package ports

import (
	"context"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/kernel"
)

// DonateItemRepository defines the persistence contract for donated goods.
type DonateItemRepository interface {
	Add(ctx context.Context, aggregate *donateitem.DonateItem) error
	Update(ctx context.Context, aggregate *donateitem.DonateItem) error

	// Delete physically removes the item. Only donors withdrawing an item that
	// was never published reach this.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error)

	Find(ctx context.Context, filter ListFilter) ([]*donateitem.DonateItem, error)
}
