package queries

import (
	"context"
	"errors"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"
)

// GetEntityQueryHandler reads one entity without locking it. Entities the
// actor may not see are reported as not found:
//   - listings and donate items outside review are visible to their creator and
//     administrators only;
//   - requests are visible to the requester, the owner of the target and
//     administrators.
type GetEntityQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetEntityQueryHandler(uowFactory ports.UnitOfWorkFactory) GetEntityQueryHandler {
	return GetEntityQueryHandler{uowFactory: uowFactory}
}

func (h GetEntityQueryHandler) Handle(ctx context.Context, query GetEntityQuery) (EntityView, error) {
	if err := query.Validate(); err != nil {
		return EntityView{}, err
	}

	uow := h.uowFactory.Create()
	actor := query.Actor()
	hidden := errs.NewObjectNotFoundError(query.Kind().Label(), query.ID().String())

	switch query.Kind() {
	case workflow.Product:
		p, err := uow.ProductRepository().Get(ctx, query.ID())
		if err != nil {
			return EntityView{}, err
		}
		if !actor.IsAdmin() && !p.IsOwnedBy(actor.ID()) && !isPublic(query.Kind(), p.Status().String()) {
			return EntityView{}, hidden
		}
		return productView(p), nil

	case workflow.DonateItem:
		item, err := uow.DonateItemRepository().Get(ctx, query.ID())
		if err != nil {
			return EntityView{}, err
		}
		if !actor.IsAdmin() && !item.IsOwnedBy(actor.ID()) && !isPublic(query.Kind(), item.Status().String()) {
			return EntityView{}, hidden
		}
		return donateItemView(item), nil

	case workflow.DonateRequest:
		r, err := uow.DonateRequestRepository().Get(ctx, query.ID())
		if err != nil {
			return EntityView{}, err
		}
		if actor.IsAdmin() || r.IsRequestedBy(actor.ID()) {
			return donateRequestView(r), nil
		}
		item, err := uow.DonateItemRepository().Get(ctx, r.ItemID())
		if err != nil {
			return EntityView{}, notFoundAs(err, hidden)
		}
		if !item.IsOwnedBy(actor.ID()) {
			return EntityView{}, hidden
		}
		return donateRequestView(r), nil

	case workflow.ExchangeRequest:
		r, err := uow.ExchangeRequestRepository().Get(ctx, query.ID())
		if err != nil {
			return EntityView{}, err
		}
		if !actor.IsAdmin() && !r.IsRequestedBy(actor.ID()) {
			if err = h.requireProductOwner(ctx, uow, r.ProductID(), actor.ID(), hidden); err != nil {
				return EntityView{}, err
			}
		}
		return exchangeRequestView(r), nil

	case workflow.PurchaseRequest:
		r, err := uow.PurchaseRequestRepository().Get(ctx, query.ID())
		if err != nil {
			return EntityView{}, err
		}
		if !actor.IsAdmin() && !r.IsBoughtBy(actor.ID()) {
			if err = h.requireProductOwner(ctx, uow, r.ProductID(), actor.ID(), hidden); err != nil {
				return EntityView{}, err
			}
		}
		return purchaseRequestView(r), nil

	default:
		return EntityView{}, errs.NewValueIsInvalidError("entity kind")
	}
}

func (h GetEntityQueryHandler) requireProductOwner(
	ctx context.Context,
	uow ports.UnitOfWork,
	productID kernel.UUID,
	actorID kernel.UUID,
	hidden error,
) error {
	p, err := uow.ProductRepository().Get(ctx, productID)
	if err != nil {
		return notFoundAs(err, hidden)
	}
	if !p.IsOwnedBy(actorID) {
		return hidden
	}
	return nil
}

// notFoundAs replaces a missing target with the error of the entity itself.
func notFoundAs(err error, hidden error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return hidden
	}
	return err
}
