// Package commands contains the workflow operations that modify system state.
// Every command follows the same pattern: guarded construction, one unit of work
// per attempt, validation through the domain services, commit, then notification.
package commands

import (
	"context"

	"careshare/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest one that covers the repositories they touch.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	DonateItemRepoFactory interface {
		DonateItemRepository() ports.DonateItemRepository
	}

	DonateRequestRepoFactory interface {
		DonateRequestRepository() ports.DonateRequestRepository
	}

	ExchangeRequestRepoFactory interface {
		ExchangeRequestRepository() ports.ExchangeRequestRepository
	}

	PurchaseRequestRepoFactory interface {
		PurchaseRequestRepository() ports.PurchaseRequestRepository
	}

	// ProductUoW manages transactions that only create or change listings.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DonateItemUoW manages transactions that only create or change donate items.
	DonateItemUoW interface {
		TxManager
		DonateItemRepoFactory
	}

	// DonateItemUoWFactory creates new donate item unit of work instances.
	DonateItemUoWFactory interface {
		Create() DonateItemUoW
	}

	// UoW spans every repository. The workflow coordinator and the request
	// creation handlers use it because they lock a request together with the
	// entity it targets.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.DonateRequestRepository().GetForUpdate(ctx, id)
	//   item, err := uow.DonateItemRepository().GetForUpdate(ctx, r.ItemID())
	//   // ... validate, transition, cascade
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		DonateItemRepoFactory
		DonateRequestRepoFactory
		ExchangeRequestRepoFactory
		PurchaseRequestRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-entity operations.
	UoWFactory interface {
		Create() UoW
	}
)
