package services

import (
	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"
)

// Effect is a secondary mutation applied to a linked entity.
type Effect int

const (
	UnknownEffect Effect = iota
	// ClaimDonateItem moves the linked donate item from Approved to Claimed.
	ClaimDonateItem
	// SellProduct moves the linked product from Approved to Sold.
	SellProduct
)

func (e Effect) String() string {
	switch e {
	case ClaimDonateItem:
		return "claim donate item"
	case SellProduct:
		return "sell product"
	default:
		return "unknown"
	}
}

// Cascade is one mutation a primary transition requires on its linked entity.
type Cascade struct {
	Target workflow.Kind
	Effect Effect
}

// anyStatus matches every origin status in a cascade rule.
const anyStatus = "*"

type cascadeRule struct {
	kind    workflow.Kind
	from    string
	to      string
	cascade Cascade
}

func getCascadeRules() []cascadeRule {
	return []cascadeRule{
		{
			kind:    workflow.DonateRequest,
			from:    donaterequest.Pending.String(),
			to:      donaterequest.Approved.String(),
			cascade: Cascade{Target: workflow.DonateItem, Effect: ClaimDonateItem},
		},
		{
			kind:    workflow.PurchaseRequest,
			from:    anyStatus,
			to:      purchaserequest.Delivered.String(),
			cascade: Cascade{Target: workflow.Product, Effect: SellProduct},
		},
	}
}

// CascadeResolver maps an applied transition to the mutations it requires on
// linked entities, and applies them.
//
// The rule table:
//   - DonateRequest PENDING -> APPROVED: donate item must be APPROVED, becomes CLAIMED
//   - PurchaseRequest * -> DELIVERED: product must be APPROVED, becomes SOLD
//   - ExchangeRequest: no cascade
//
// A linked entity failing its precondition yields a TargetUnavailableError and
// the caller must roll back the whole unit of work, including the primary change.
type CascadeResolver struct{}

func NewCascadeResolver() CascadeResolver {
	return CascadeResolver{}
}

// Resolve returns the cascades required by transition, in application order.
func (r CascadeResolver) Resolve(transition workflow.Transition) []Cascade {
	cascades := make([]Cascade, 0)
	for _, rule := range getCascadeRules() {
		if rule.kind != transition.Kind || rule.to != transition.To {
			continue
		}
		if rule.from != anyStatus && rule.from != transition.From {
			continue
		}
		cascades = append(cascades, rule.cascade)
	}
	return cascades
}

// ApplyToDonateItem claims item. item must have been re-read under lock in the
// same unit of work as the primary transition.
func (r CascadeResolver) ApplyToDonateItem(item *donateitem.DonateItem, cascade Cascade) (workflow.Transition, error) {
	if err := item.Validate(); err != nil {
		return workflow.Transition{}, err
	}
	if cascade.Effect != ClaimDonateItem {
		return workflow.Transition{}, errs.NewValueIsInvalidError("cascade effect " + cascade.Effect.String())
	}

	from := item.Status()
	if from != donateitem.Approved {
		return workflow.Transition{}, errs.NewTargetUnavailableError(workflow.DonateItem.Label(), item.ID().String(), from.String())
	}
	if err := item.Claim(); err != nil {
		return workflow.Transition{}, err
	}

	return workflow.Transition{
		Kind:     workflow.DonateItem,
		EntityID: item.ID(),
		From:     from.String(),
		To:       item.Status().String(),
	}, nil
}

// ApplyToProduct sells p. A product that is already Sold makes the delivery fail.
func (r CascadeResolver) ApplyToProduct(p *product.Product, cascade Cascade) (workflow.Transition, error) {
	if err := p.Validate(); err != nil {
		return workflow.Transition{}, err
	}
	if cascade.Effect != SellProduct {
		return workflow.Transition{}, errs.NewValueIsInvalidError("cascade effect " + cascade.Effect.String())
	}

	from := p.Status()
	if from != product.Approved {
		return workflow.Transition{}, errs.NewTargetUnavailableError(workflow.Product.Label(), p.ID().String(), from.String())
	}
	if err := p.Sell(); err != nil {
		return workflow.Transition{}, err
	}

	return workflow.Transition{
		Kind:     workflow.Product,
		EntityID: p.ID(),
		From:     from.String(),
		To:       p.Status().String(),
	}, nil
}
