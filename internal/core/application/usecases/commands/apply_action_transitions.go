package commands

import (
	"context"
	"fmt"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/pkg/errs"
)

// linkedEntities holds the rows a request was locked together with.
type linkedEntities struct {
	item    *donateitem.DonateItem
	product *product.Product
}

func (h ApplyActionCommandHandler) applyToProduct(ctx context.Context, uow UoW, cmd ApplyActionCommand) (ApplyActionResult, error) {
	repo := uow.ProductRepository()

	p, err := repo.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	if err = h.validator.ValidateProduct(p, cmd.Actor(), cmd.Action()); err != nil {
		return ApplyActionResult{}, err
	}

	from := p.Status()
	switch cmd.Action() {
	case workflow.Approve:
		err = p.Approve()
	case workflow.Reject:
		err = p.Reject(cmd.Reason())
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return ApplyActionResult{}, err
	}

	var result ApplyActionResult
	result.record(cmd.Actor().ID(), workflow.Transition{
		Kind:     workflow.Product,
		EntityID: p.ID(),
		From:     from.String(),
		To:       p.Status().String(),
	}, p.OwnerID())
	return result, nil
}

func (h ApplyActionCommandHandler) applyToDonateItem(ctx context.Context, uow UoW, cmd ApplyActionCommand) (ApplyActionResult, error) {
	repo := uow.DonateItemRepository()

	item, err := repo.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	if err = h.validator.ValidateDonateItem(item, cmd.Actor(), cmd.Action()); err != nil {
		return ApplyActionResult{}, err
	}

	transition := workflow.Transition{
		Kind:     workflow.DonateItem,
		EntityID: item.ID(),
		From:     item.Status().String(),
	}

	switch cmd.Action() {
	case workflow.Delete:
		if err = repo.Delete(ctx, item.ID()); err != nil {
			return ApplyActionResult{}, err
		}
		transition.To = workflow.Deleted

		var result ApplyActionResult
		result.record(cmd.Actor().ID(), transition, item.DonorID())
		return result, nil
	case workflow.Approve:
		err = item.Approve()
	case workflow.Reject:
		err = item.Reject(cmd.Reason())
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return ApplyActionResult{}, err
	}
	transition.To = item.Status().String()

	var result ApplyActionResult
	result.record(cmd.Actor().ID(), transition, item.DonorID())
	return result, nil
}

func (h ApplyActionCommandHandler) applyToDonateRequest(ctx context.Context, uow UoW, cmd ApplyActionCommand) (ApplyActionResult, error) {
	requests := uow.DonateRequestRepository()
	items := uow.DonateItemRepository()

	r, err := requests.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	item, err := items.GetForUpdate(ctx, r.ItemID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	if err = h.validator.ValidateDonateRequest(r, cmd.Actor(), cmd.Action()); err != nil {
		return ApplyActionResult{}, err
	}

	transition := workflow.Transition{
		Kind:     workflow.DonateRequest,
		EntityID: r.ID(),
		From:     r.Status().String(),
	}

	switch cmd.Action() {
	case workflow.Cancel:
		if err = requests.Delete(ctx, r.ID()); err != nil {
			return ApplyActionResult{}, err
		}
		transition.To = workflow.Deleted

		var result ApplyActionResult
		result.record(cmd.Actor().ID(), transition, r.RequesterID(), item.DonorID())
		return result, nil
	case workflow.Approve:
		err = r.Approve()
	case workflow.Reject:
		err = r.Reject(cmd.Reason())
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = requests.Update(ctx, r); err != nil {
		return ApplyActionResult{}, err
	}
	transition.To = r.Status().String()

	var result ApplyActionResult
	result.record(cmd.Actor().ID(), transition, r.RequesterID(), item.DonorID())

	if err = h.cascade(ctx, uow, cmd, &result, transition, linkedEntities{item: item}); err != nil {
		return ApplyActionResult{}, err
	}
	return result, nil
}

func (h ApplyActionCommandHandler) applyToExchangeRequest(ctx context.Context, uow UoW, cmd ApplyActionCommand) (ApplyActionResult, error) {
	requests := uow.ExchangeRequestRepository()
	products := uow.ProductRepository()

	r, err := requests.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	target, err := products.GetForUpdate(ctx, r.ProductID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	if err = h.validator.ValidateExchangeRequest(r, target, cmd.Actor(), cmd.Action()); err != nil {
		return ApplyActionResult{}, err
	}

	transition := workflow.Transition{
		Kind:     workflow.ExchangeRequest,
		EntityID: r.ID(),
		From:     r.Status().String(),
	}

	switch cmd.Action() {
	case workflow.Cancel, workflow.Delete:
		if err = requests.Delete(ctx, r.ID()); err != nil {
			return ApplyActionResult{}, err
		}
		transition.To = workflow.Deleted
		transition.Override = cmd.Action() == workflow.Delete

		var result ApplyActionResult
		result.record(cmd.Actor().ID(), transition, r.RequesterID(), target.OwnerID())
		return result, nil
	case workflow.Approve:
		err = r.Approve()
	case workflow.Reject:
		err = r.Reject(cmd.Reason())
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = requests.Update(ctx, r); err != nil {
		return ApplyActionResult{}, err
	}
	transition.To = r.Status().String()

	var result ApplyActionResult
	result.record(cmd.Actor().ID(), transition, r.RequesterID(), target.OwnerID())
	return result, nil
}

func (h ApplyActionCommandHandler) applyToPurchaseRequest(ctx context.Context, uow UoW, cmd ApplyActionCommand) (ApplyActionResult, error) {
	requests := uow.PurchaseRequestRepository()
	products := uow.ProductRepository()

	r, err := requests.GetForUpdate(ctx, cmd.EntityID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	target, err := products.GetForUpdate(ctx, r.ProductID())
	if err != nil {
		return ApplyActionResult{}, err
	}
	if err = h.validator.ValidatePurchaseRequest(r, target, cmd.Actor(), cmd.Action()); err != nil {
		return ApplyActionResult{}, err
	}

	from := r.Status()
	switch cmd.Action() {
	case workflow.Confirm:
		err = r.Confirm()
	case workflow.Ship:
		err = r.Ship()
	case workflow.Deliver:
		err = r.Deliver()
	case workflow.Cancel:
		err = r.Cancel()
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = requests.Update(ctx, r); err != nil {
		return ApplyActionResult{}, err
	}

	transition := workflow.Transition{
		Kind:     workflow.PurchaseRequest,
		EntityID: r.ID(),
		From:     from.String(),
		To:       r.Status().String(),
	}

	var result ApplyActionResult
	result.record(cmd.Actor().ID(), transition, r.BuyerID(), target.OwnerID())

	if err = h.cascade(ctx, uow, cmd, &result, transition, linkedEntities{product: target}); err != nil {
		return ApplyActionResult{}, err
	}
	return result, nil
}

// cascade applies the effects the resolver derives from transition to the
// already locked linked entities and records them in result.
func (h ApplyActionCommandHandler) cascade(
	ctx context.Context,
	uow UoW,
	cmd ApplyActionCommand,
	result *ApplyActionResult,
	transition workflow.Transition,
	linked linkedEntities,
) error {
	for _, c := range h.resolver.Resolve(transition) {
		switch c.Target {
		case workflow.DonateItem:
			if linked.item == nil {
				return missingLink(transition, c)
			}
			applied, err := h.resolver.ApplyToDonateItem(linked.item, c)
			if err != nil {
				return err
			}
			if err = uow.DonateItemRepository().Update(ctx, linked.item); err != nil {
				return err
			}
			result.record(cmd.Actor().ID(), applied, linked.item.DonorID())
		case workflow.Product:
			if linked.product == nil {
				return missingLink(transition, c)
			}
			applied, err := h.resolver.ApplyToProduct(linked.product, c)
			if err != nil {
				return err
			}
			if err = uow.ProductRepository().Update(ctx, linked.product); err != nil {
				return err
			}
			result.record(cmd.Actor().ID(), applied, linked.product.OwnerID())
		default:
			return missingLink(transition, c)
		}
	}
	return nil
}

func missingLink(transition workflow.Transition, c services.Cascade) error {
	return errs.NewValueIsInvalidErrorWithCause("cascade target is invalid",
		fmt.Errorf("%s of %s has no linked %s", c.Effect, transition.Kind, c.Target))
}
