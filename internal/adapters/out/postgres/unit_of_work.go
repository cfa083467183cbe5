// Package postgres provides the GORM-based Unit of Work over the CareShare tables.
// One unit of work wraps one database transaction; every repository it hands
// out runs inside that transaction once Begin has been called.
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	r, err := uow.DonateRequestRepository().GetForUpdate(ctx, requestID)
//	if err != nil {
//	    return err
//	}
//	item, err := uow.DonateItemRepository().GetForUpdate(ctx, r.ItemID())
//	if err != nil {
//	    return err
//	}
//	// ... approve the request, claim the item, Update both
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction and must not be shared between goroutines
//   - GetForUpdate takes a row lock that is held until Commit or Rollback
//   - Serialization failures and deadlocks surface as errs.StoreConflictError so callers can retry
package postgres

import (
	"context"

	"careshare/internal/adapters/out/postgres/donateitemrepo"
	"careshare/internal/adapters/out/postgres/donaterequestrepo"
	"careshare/internal/adapters/out/postgres/exchangerequestrepo"
	"careshare/internal/adapters/out/postgres/pgerrs"
	"careshare/internal/adapters/out/postgres/productrepo"
	"careshare/internal/adapters/out/postgres/purchaserequestrepo"
	"careshare/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the five
// workflow repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Classify(tx.Error, "transaction", nil)
	}
	uow.tx = tx

	return nil
}

// Commit makes every write of the transaction permanent. A serialization
// failure at commit is reported as errs.StoreConflictError.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerrs.Classify(err, "transaction", nil)
}

// Rollback discards the transaction. It does nothing when no transaction is
// open, so handlers can defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) DonateItemRepository() ports.DonateItemRepository {
	return donateitemrepo.NewGormDonateItemRepository(uow.conn())
}

func (uow *GormUnitOfWork) DonateRequestRepository() ports.DonateRequestRepository {
	return donaterequestrepo.NewGormDonateRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) ExchangeRequestRepository() ports.ExchangeRequestRepository {
	return exchangerequestrepo.NewGormExchangeRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) PurchaseRequestRepository() ports.PurchaseRequestRepository {
	return purchaserequestrepo.NewGormPurchaseRequestRepository(uow.conn())
}

// conn returns the open transaction, or the base connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
