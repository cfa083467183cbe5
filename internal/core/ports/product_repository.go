// Package ports defines the contracts between the workflow core and its collaborators:
// persistence, notification delivery and identity resolution.
package ports

import (
	"context"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product listings.
type ProductRepository interface {
	// Add persists a new listing. The listing must not already exist.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists the current state of an existing listing.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a listing by id without locking it.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a listing and holds it exclusively until the
	// surrounding unit of work ends. Listings are the linked entity of exchange and
	// purchase requests, so cascades and request creation read them through here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Find lists listings matching filter without locking them.
	Find(ctx context.Context, filter ListFilter) ([]*product.Product, error)
}
