package services

import (
	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"
)

const (
	roleAdministrator       = "administrator"
	roleDonor               = "donor"
	roleRequester           = "requester"
	roleProductOwnerOrAdmin = "product owner or administrator"
	roleBuyerOrSeller       = "buyer or seller"
	roleAnyoneButOwner      = "someone other than the product owner"
	roleAnyoneButSeller     = "someone other than the seller"
)

// TransitionValidator decides whether an actor may perform an action on an entity
// in its current state. It never mutates what it inspects.
//
// Authorization is checked before state, so an actor without the required role
// receives a ForbiddenError regardless of status.
//
// Business rules:
//   - Products and donate items are reviewed by administrators, from Pending only
//   - Donate requests are decided by administrators; requesters may cancel while Pending
//   - Exchange requests are decided by the product owner or an administrator;
//     requesters may cancel while Pending; administrators may delete in any status
//   - Purchase requests are advanced by buyer or seller one step at a time
//
// Example usage:
//
//	validator := services.NewTransitionValidator()
//	if err := validator.ValidatePurchaseRequest(pr, p, actor, workflow.Ship); err != nil {
//	    return err // ForbiddenError or InvalidStateError
//	}
type TransitionValidator struct{}

// NewTransitionValidator creates a new TransitionValidator instance.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// ValidateProduct checks an administrator review of a listing.
func (v TransitionValidator) ValidateProduct(p *product.Product, actor workflow.Actor, action workflow.Action) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch action {
	case workflow.Approve, workflow.Reject:
		if !actor.IsAdmin() {
			return forbidden(workflow.Product, action, roleAdministrator)
		}
		if action == workflow.Approve {
			_, err := p.Status().Approve()
			return err
		}
		_, err := p.Status().Reject()
		return err
	default:
		return unsupported(workflow.Product, p.Status().String(), action)
	}
}

// ValidateDonateItem checks an administrator review or a donor withdrawal of an item.
func (v TransitionValidator) ValidateDonateItem(item *donateitem.DonateItem, actor workflow.Actor, action workflow.Action) error {
	if err := item.Validate(); err != nil {
		return err
	}

	switch action {
	case workflow.Approve, workflow.Reject:
		if !actor.IsAdmin() {
			return forbidden(workflow.DonateItem, action, roleAdministrator)
		}
		if action == workflow.Approve {
			_, err := item.Status().Approve()
			return err
		}
		_, err := item.Status().Reject()
		return err
	case workflow.Delete:
		if !item.IsOwnedBy(actor.ID()) {
			return forbidden(workflow.DonateItem, action, roleDonor)
		}
		return item.Status().ValidateDelete()
	default:
		return unsupported(workflow.DonateItem, item.Status().String(), action)
	}
}

// ValidateDonateRequest checks a decision on, or withdrawal of, a donate request.
// Availability of the item itself is resolved by the CascadeResolver.
func (v TransitionValidator) ValidateDonateRequest(r *donaterequest.DonateRequest, actor workflow.Actor, action workflow.Action) error {
	if err := r.Validate(); err != nil {
		return err
	}

	switch action {
	case workflow.Approve, workflow.Reject:
		if !actor.IsAdmin() {
			return forbidden(workflow.DonateRequest, action, roleAdministrator)
		}
		if action == workflow.Approve {
			_, err := r.Status().Approve()
			return err
		}
		_, err := r.Status().Reject()
		return err
	case workflow.Cancel:
		if !r.IsRequestedBy(actor.ID()) {
			return forbidden(workflow.DonateRequest, action, roleRequester)
		}
		return r.Status().ValidateCancel()
	default:
		return unsupported(workflow.DonateRequest, r.Status().String(), action)
	}
}

// ValidateExchangeRequest checks a decision on an exchange offer. target is the
// product the offer was made for and decides who owns the decision.
func (v TransitionValidator) ValidateExchangeRequest(
	r *exchangerequest.ExchangeRequest,
	target *product.Product,
	actor workflow.Actor,
	action workflow.Action,
) error {
	if err := r.Validate(); err != nil {
		return err
	}

	switch action {
	case workflow.Approve, workflow.Reject:
		if err := target.Validate(); err != nil {
			return err
		}
		if !actor.IsAdmin() && !target.IsOwnedBy(actor.ID()) {
			return forbidden(workflow.ExchangeRequest, action, roleProductOwnerOrAdmin)
		}
		if action == workflow.Approve {
			_, err := r.Status().Approve()
			return err
		}
		_, err := r.Status().Reject()
		return err
	case workflow.Cancel:
		if !r.IsRequestedBy(actor.ID()) {
			return forbidden(workflow.ExchangeRequest, action, roleRequester)
		}
		return r.Status().ValidateCancel()
	case workflow.Delete:
		if !actor.IsAdmin() {
			return forbidden(workflow.ExchangeRequest, action, roleAdministrator)
		}
		return nil
	default:
		return unsupported(workflow.ExchangeRequest, r.Status().String(), action)
	}
}

// ValidatePurchaseRequest checks a fulfilment step. Only the buyer and the seller
// (owner of target) may move a purchase, and only one step forward or to Cancelled.
func (v TransitionValidator) ValidatePurchaseRequest(
	r *purchaserequest.PurchaseRequest,
	target *product.Product,
	actor workflow.Actor,
	action workflow.Action,
) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	var step func() (purchaserequest.Status, error)
	switch action {
	case workflow.Confirm:
		step = r.Status().Confirm
	case workflow.Ship:
		step = r.Status().Ship
	case workflow.Deliver:
		step = r.Status().Deliver
	case workflow.Cancel:
		step = r.Status().Cancel
	default:
		return unsupported(workflow.PurchaseRequest, r.Status().String(), action)
	}

	if !r.IsBoughtBy(actor.ID()) && !target.IsOwnedBy(actor.ID()) {
		return forbidden(workflow.PurchaseRequest, action, roleBuyerOrSeller)
	}

	_, err := step()
	return err
}

// ValidateNewDonateRequest checks that item can take a request from actor.
// hasActiveRequest reports whether actor already holds a Pending or Approved
// request for the item; the caller must read it while holding the item lock.
func (v TransitionValidator) ValidateNewDonateRequest(item *donateitem.DonateItem, actor workflow.Actor, hasActiveRequest bool) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if item.Status() != donateitem.Approved {
		return errs.NewTargetUnavailableError(workflow.DonateItem.Label(), item.ID().String(), item.Status().String())
	}
	if hasActiveRequest {
		return errs.NewDuplicateRequestError(workflow.DonateItem.Label(), item.ID().String())
	}
	return nil
}

// ValidateNewExchangeRequest checks that target can take an exchange offer from actor.
func (v TransitionValidator) ValidateNewExchangeRequest(target *product.Product, actor workflow.Actor) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if target.Status() != product.Approved {
		return errs.NewTargetUnavailableError(workflow.Product.Label(), target.ID().String(), target.Status().String())
	}
	if target.IsOwnedBy(actor.ID()) {
		return errs.NewForbiddenError("create "+workflow.ExchangeRequest.Label(), roleAnyoneButOwner)
	}
	return nil
}

// ValidateNewPurchaseRequest checks that target can be bought by actor.
func (v TransitionValidator) ValidateNewPurchaseRequest(target *product.Product, actor workflow.Actor) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if target.Status() != product.Approved {
		return errs.NewTargetUnavailableError(workflow.Product.Label(), target.ID().String(), target.Status().String())
	}
	if target.IsOwnedBy(actor.ID()) {
		return errs.NewForbiddenError("create "+workflow.PurchaseRequest.Label(), roleAnyoneButSeller)
	}
	return nil
}

func forbidden(kind workflow.Kind, action workflow.Action, role string) error {
	return errs.NewForbiddenError(action.String()+" "+kind.Label(), role)
}

func unsupported(kind workflow.Kind, status string, action workflow.Action) error {
	return errs.NewInvalidStateError(kind.Label(), status, action.String())
}
