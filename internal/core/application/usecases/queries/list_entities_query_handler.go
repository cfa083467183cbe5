package queries

import (
	"context"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"
)

// ListEntitiesQueryHandler answers listings from the repositories' Find.
//
// Outside ScopeMine and ScopeReceived a regular user only browses the public
// catalog: approved or finished listings and donate items. Listing every
// request of a kind, or catalog entries still under review, is the
// administrator's moderation queue.
type ListEntitiesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListEntitiesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListEntitiesQueryHandler {
	return ListEntitiesQueryHandler{uowFactory: uowFactory}
}

func (h ListEntitiesQueryHandler) Handle(ctx context.Context, query ListEntitiesQuery) (ListEntitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListEntitiesQueryResponse{}, err
	}

	filter, err := listFilter(query)
	if err != nil {
		return ListEntitiesQueryResponse{}, err
	}

	items, err := h.find(ctx, query.Kind(), filter)
	if err != nil {
		return ListEntitiesQueryResponse{}, err
	}

	return ListEntitiesQueryResponse{
		Items:  items,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}

func listFilter(query ListEntitiesQuery) (ports.ListFilter, error) {
	filter := ports.ListFilter{
		Status: query.Status(),
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}
	actor := query.Actor()
	actorID := actor.ID()

	switch query.Scope() {
	case ScopeMine:
		filter.CreatorID = &actorID
	case ScopeReceived:
		filter.TargetOwnerID = &actorID
	default:
		if actor.IsAdmin() {
			break
		}
		label := query.Kind().Label()
		if !isCatalog(query.Kind()) {
			return ports.ListFilter{}, errs.NewForbiddenError("listing every "+label, workflow.Admin.String())
		}
		if filter.Status == nil {
			approved := publicStatuses(query.Kind())[0]
			filter.Status = &approved
		} else if !isPublic(query.Kind(), *filter.Status) {
			return ports.ListFilter{}, errs.NewForbiddenError("listing "+*filter.Status+" "+label, workflow.Admin.String())
		}
	}
	return filter, nil
}

func (h ListEntitiesQueryHandler) find(ctx context.Context, kind workflow.Kind, filter ports.ListFilter) ([]EntityView, error) {
	uow := h.uowFactory.Create()
	views := make([]EntityView, 0)

	switch kind {
	case workflow.Product:
		found, err := uow.ProductRepository().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			views = append(views, productView(p))
		}
	case workflow.DonateItem:
		found, err := uow.DonateItemRepository().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, item := range found {
			views = append(views, donateItemView(item))
		}
	case workflow.DonateRequest:
		found, err := uow.DonateRequestRepository().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			views = append(views, donateRequestView(r))
		}
	case workflow.ExchangeRequest:
		found, err := uow.ExchangeRequestRepository().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			views = append(views, exchangeRequestView(r))
		}
	case workflow.PurchaseRequest:
		found, err := uow.PurchaseRequestRepository().Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			views = append(views, purchaseRequestView(r))
		}
	default:
		return nil, errs.NewValueIsInvalidError("entity kind")
	}
	return views, nil
}
