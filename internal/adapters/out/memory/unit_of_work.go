package memory

import (
	"context"
	"errors"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/ports"
)

// ErrNoTransaction is returned by Commit when Begin was not called.
var ErrNoTransaction = errors.New("memory: no transaction in progress")

// UnitOfWork buffers writes until Commit. Outside Begin/Commit every write is
// committed on its own, like an autocommit database session.
type UnitOfWork struct {
	store  *Store
	active bool

	products  *changeset[*product.Product]
	items     *changeset[*donateitem.DonateItem]
	donations *changeset[*donaterequest.DonateRequest]
	exchanges *changeset[*exchangerequest.ExchangeRequest]
	purchases *changeset[*purchaserequest.PurchaseRequest]
}

func newUnitOfWork(s *Store) *UnitOfWork {
	return &UnitOfWork{
		store:     s,
		products:  newChangeset(s.products),
		items:     newChangeset(s.items),
		donations: newChangeset(s.donations),
		exchanges: newChangeset(s.exchanges),
		purchases: newChangeset(s.purchases),
	}
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit validates the read set and publishes every buffered write atomically.
// On a conflict nothing is written and the buffered changes are discarded.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	return uow.flush()
}

// Rollback discards buffered writes. It is a no-op without an open transaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	uow.active = false
	uow.reset()
	return nil
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

func (uow *UnitOfWork) DonateItemRepository() ports.DonateItemRepository {
	return &donateItemRepository{uow: uow}
}

func (uow *UnitOfWork) DonateRequestRepository() ports.DonateRequestRepository {
	return &donateRequestRepository{uow: uow}
}

func (uow *UnitOfWork) ExchangeRequestRepository() ports.ExchangeRequestRepository {
	return &exchangeRequestRepository{uow: uow}
}

func (uow *UnitOfWork) PurchaseRequestRepository() ports.PurchaseRequestRepository {
	return &purchaseRequestRepository{uow: uow}
}

func (uow *UnitOfWork) flush() error {
	defer uow.reset()

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(
		uow.products.validate(),
		uow.items.validate(),
		uow.donations.validate(),
		uow.exchanges.validate(),
		uow.purchases.validate(),
	); err != nil {
		return err
	}

	version := s.nextVersion()
	uow.products.apply(version)
	uow.items.apply(version)
	uow.donations.apply(version)
	uow.exchanges.apply(version)
	uow.purchases.apply(version)
	return nil
}

// written commits a standalone write when no transaction is open.
func (uow *UnitOfWork) written(err error) error {
	if err != nil || uow.active {
		return err
	}
	return uow.flush()
}

func (uow *UnitOfWork) reset() {
	uow.products.reset()
	uow.items.reset()
	uow.donations.reset()
	uow.exchanges.reset()
	uow.purchases.reset()
}

// read runs fn under the shared store lock.
func read[T any](uow *UnitOfWork, fn func() (T, error)) (T, error) {
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	return fn()
}

// write runs fn under the shared store lock and then autocommits when no
// transaction is open.
func write(uow *UnitOfWork, fn func() error) error {
	uow.store.mu.RLock()
	err := fn()
	uow.store.mu.RUnlock()
	return uow.written(err)
}

// productOwnedBy reports whether product id belongs to owner. A nil owner
// matches everything. Store lock must be held for reading.
func (uow *UnitOfWork) productOwnedBy(id kernel.UUID, owner *kernel.UUID) bool {
	if owner == nil {
		return true
	}
	p, err := uow.products.get(id, false)
	return err == nil && p.IsOwnedBy(*owner)
}

// itemOwnedBy is productOwnedBy for donate items.
func (uow *UnitOfWork) itemOwnedBy(id kernel.UUID, owner *kernel.UUID) bool {
	if owner == nil {
		return true
	}
	item, err := uow.items.get(id, false)
	return err == nil && item.IsOwnedBy(*owner)
}
