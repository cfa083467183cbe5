package memory

import (
	"context"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/ports"
)

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.products.add(aggregate) })
}

func (r *productRepository) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.products.update(aggregate) })
}

func (r *productRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	return read(r.uow, func() (*product.Product, error) { return r.uow.products.get(id, false) })
}

func (r *productRepository) GetForUpdate(_ context.Context, id kernel.UUID) (*product.Product, error) {
	return read(r.uow, func() (*product.Product, error) { return r.uow.products.get(id, true) })
}

func (r *productRepository) Find(_ context.Context, filter ports.ListFilter) ([]*product.Product, error) {
	return read(r.uow, func() ([]*product.Product, error) {
		return r.uow.products.find(func(d *product.Product) bool {
			return matches(r.uow.products.table.codec, filter, d)
		}, filter.Offset, filter.Limit)
	})
}

type donateItemRepository struct {
	uow *UnitOfWork
}

func (r *donateItemRepository) Add(_ context.Context, aggregate *donateitem.DonateItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.items.add(aggregate) })
}

func (r *donateItemRepository) Update(_ context.Context, aggregate *donateitem.DonateItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.items.update(aggregate) })
}

func (r *donateItemRepository) Delete(_ context.Context, id kernel.UUID) error {
	return write(r.uow, func() error { return r.uow.items.remove(id) })
}

func (r *donateItemRepository) Get(_ context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	return read(r.uow, func() (*donateitem.DonateItem, error) { return r.uow.items.get(id, false) })
}

func (r *donateItemRepository) GetForUpdate(_ context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	return read(r.uow, func() (*donateitem.DonateItem, error) { return r.uow.items.get(id, true) })
}

func (r *donateItemRepository) Find(_ context.Context, filter ports.ListFilter) ([]*donateitem.DonateItem, error) {
	return read(r.uow, func() ([]*donateitem.DonateItem, error) {
		return r.uow.items.find(func(d *donateitem.DonateItem) bool {
			return matches(r.uow.items.table.codec, filter, d)
		}, filter.Offset, filter.Limit)
	})
}

type donateRequestRepository struct {
	uow *UnitOfWork
}

func (r *donateRequestRepository) Add(_ context.Context, aggregate *donaterequest.DonateRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.donations.add(aggregate) })
}

func (r *donateRequestRepository) Update(_ context.Context, aggregate *donaterequest.DonateRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.donations.update(aggregate) })
}

func (r *donateRequestRepository) Delete(_ context.Context, id kernel.UUID) error {
	return write(r.uow, func() error { return r.uow.donations.remove(id) })
}

func (r *donateRequestRepository) Get(_ context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	return read(r.uow, func() (*donaterequest.DonateRequest, error) { return r.uow.donations.get(id, false) })
}

func (r *donateRequestRepository) GetForUpdate(_ context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	return read(r.uow, func() (*donaterequest.DonateRequest, error) { return r.uow.donations.get(id, true) })
}

func (r *donateRequestRepository) Find(_ context.Context, filter ports.ListFilter) ([]*donaterequest.DonateRequest, error) {
	return read(r.uow, func() ([]*donaterequest.DonateRequest, error) {
		return r.uow.donations.find(func(d *donaterequest.DonateRequest) bool {
			return matches(r.uow.donations.table.codec, filter, d) && r.uow.itemOwnedBy(d.ItemID(), filter.TargetOwnerID)
		}, filter.Offset, filter.Limit)
	})
}

func (r *donateRequestRepository) HasActiveRequest(_ context.Context, itemID kernel.UUID, requesterID kernel.UUID) (bool, error) {
	return read(r.uow, func() (bool, error) {
		return r.uow.donations.anyMatch(func(d *donaterequest.DonateRequest) bool {
			return d.ItemID().IsEqual(itemID) && d.RequesterID().IsEqual(requesterID) && d.Status().IsActive()
		}), nil
	})
}

type exchangeRequestRepository struct {
	uow *UnitOfWork
}

func (r *exchangeRequestRepository) Add(_ context.Context, aggregate *exchangerequest.ExchangeRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.exchanges.add(aggregate) })
}

func (r *exchangeRequestRepository) Update(_ context.Context, aggregate *exchangerequest.ExchangeRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.exchanges.update(aggregate) })
}

func (r *exchangeRequestRepository) Delete(_ context.Context, id kernel.UUID) error {
	return write(r.uow, func() error { return r.uow.exchanges.remove(id) })
}

func (r *exchangeRequestRepository) Get(_ context.Context, id kernel.UUID) (*exchangerequest.ExchangeRequest, error) {
	return read(r.uow, func() (*exchangerequest.ExchangeRequest, error) { return r.uow.exchanges.get(id, false) })
}

func (r *exchangeRequestRepository) GetForUpdate(
	_ context.Context,
	id kernel.UUID,
) (*exchangerequest.ExchangeRequest, error) {
	return read(r.uow, func() (*exchangerequest.ExchangeRequest, error) { return r.uow.exchanges.get(id, true) })
}

func (r *exchangeRequestRepository) Find(_ context.Context, filter ports.ListFilter) ([]*exchangerequest.ExchangeRequest, error) {
	return read(r.uow, func() ([]*exchangerequest.ExchangeRequest, error) {
		return r.uow.exchanges.find(func(d *exchangerequest.ExchangeRequest) bool {
			return matches(r.uow.exchanges.table.codec, filter, d) && r.uow.productOwnedBy(d.ProductID(), filter.TargetOwnerID)
		}, filter.Offset, filter.Limit)
	})
}

type purchaseRequestRepository struct {
	uow *UnitOfWork
}

func (r *purchaseRequestRepository) Add(_ context.Context, aggregate *purchaserequest.PurchaseRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.purchases.add(aggregate) })
}

func (r *purchaseRequestRepository) Update(_ context.Context, aggregate *purchaserequest.PurchaseRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return write(r.uow, func() error { return r.uow.purchases.update(aggregate) })
}

func (r *purchaseRequestRepository) Get(_ context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error) {
	return read(r.uow, func() (*purchaserequest.PurchaseRequest, error) { return r.uow.purchases.get(id, false) })
}

func (r *purchaseRequestRepository) GetForUpdate(
	_ context.Context,
	id kernel.UUID,
) (*purchaserequest.PurchaseRequest, error) {
	return read(r.uow, func() (*purchaserequest.PurchaseRequest, error) { return r.uow.purchases.get(id, true) })
}

func (r *purchaseRequestRepository) Find(_ context.Context, filter ports.ListFilter) ([]*purchaserequest.PurchaseRequest, error) {
	return read(r.uow, func() ([]*purchaserequest.PurchaseRequest, error) {
		return r.uow.purchases.find(func(d *purchaserequest.PurchaseRequest) bool {
			return matches(r.uow.purchases.table.codec, filter, d) && r.uow.productOwnedBy(d.ProductID(), filter.TargetOwnerID)
		}, filter.Offset, filter.Limit)
	})
}

// matches applies the status and creator parts of filter.
func matches[T any](c codec[T], filter ports.ListFilter, value T) bool {
	if filter.Status != nil && c.status(value) != *filter.Status {
		return false
	}
	if filter.CreatorID != nil && !c.creator(value).IsEqual(*filter.CreatorID) {
		return false
	}
	return true
}
