package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a workflow operation. Every write
// made through its repositories commits or rolls back together, so a primary
// transition and its cascades are never observed apart.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction. A concurrent modification
	// detected at commit is reported as errs.StoreConflictError.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It is a no-op after Commit.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	DonateItemRepository() DonateItemRepository
	DonateRequestRepository() DonateRequestRepository
	ExchangeRequestRepository() ExchangeRequestRepository
	PurchaseRequestRepository() PurchaseRequestRepository
}
