package queries

import (
	"time"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"

	"github.com/shopspring/decimal"
)

// EntityView is the read representation shared by every kind. CreatorID is the
// owner, donor, requester or buyer; TargetID is the product or item a request
// points at. Descriptive fields of the kind are carried in Attributes.
type EntityView struct {
	Kind            string           `json:"kind"`
	ID              string           `json:"id"`
	CreatorID       string           `json:"creatorId"`
	TargetID        string           `json:"targetId,omitempty"`
	Status          string           `json:"status"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	Attributes      map[string]any   `json:"attributes"`
	CreatedAt       time.Time        `json:"createdAt"`
	ResolvedAt      *time.Time       `json:"resolvedAt,omitempty"`
}

func productView(p *product.Product) EntityView {
	details := p.Details()
	review := p.Review()
	price := p.Price()

	resolvedAt := review.ApprovedAt
	if review.RejectedAt != nil {
		resolvedAt = review.RejectedAt
	}

	return EntityView{
		Kind:            workflow.Product.String(),
		ID:              p.ID().String(),
		CreatorID:       p.OwnerID().String(),
		Status:          p.Status().String(),
		Price:           &price,
		RejectionReason: review.RejectionReason,
		Attributes: map[string]any{
			"name":        details.Name,
			"category":    details.Category,
			"type":        details.Type,
			"condition":   details.Condition,
			"description": details.Description,
		},
		CreatedAt:  p.CreatedAt(),
		ResolvedAt: resolvedAt,
	}
}

func donateItemView(i *donateitem.DonateItem) EntityView {
	details := i.Details()

	var resolvedAt *time.Time
	if i.Status() != donateitem.Pending {
		updatedAt := i.UpdatedAt()
		resolvedAt = &updatedAt
	}

	return EntityView{
		Kind:            workflow.DonateItem.String(),
		ID:              i.ID().String(),
		CreatorID:       i.DonorID().String(),
		Status:          i.Status().String(),
		RejectionReason: i.RejectionReason(),
		Attributes: map[string]any{
			"itemType":      details.Type,
			"itemName":      details.Name,
			"quantity":      details.Quantity,
			"condition":     details.Condition,
			"pickupAddress": details.PickupAddress,
		},
		CreatedAt:  i.CreatedAt(),
		ResolvedAt: resolvedAt,
	}
}

func donateRequestView(r *donaterequest.DonateRequest) EntityView {
	return EntityView{
		Kind:            workflow.DonateRequest.String(),
		ID:              r.ID().String(),
		CreatorID:       r.RequesterID().String(),
		TargetID:        r.ItemID().String(),
		Status:          r.Status().String(),
		RejectionReason: r.RejectionReason(),
		Attributes: map[string]any{
			"description": r.Description(),
		},
		CreatedAt:  r.CreatedAt(),
		ResolvedAt: r.ResolvedAt(),
	}
}

func exchangeRequestView(r *exchangerequest.ExchangeRequest) EntityView {
	offer := r.Offer()
	return EntityView{
		Kind:            workflow.ExchangeRequest.String(),
		ID:              r.ID().String(),
		CreatorID:       r.RequesterID().String(),
		TargetID:        r.ProductID().String(),
		Status:          r.Status().String(),
		RejectionReason: r.RejectionReason(),
		Attributes: map[string]any{
			"itemName":    offer.ItemName,
			"category":    offer.Category,
			"description": offer.Description,
			"imageCount":  offer.ImageCount,
			"message":     offer.Message,
		},
		CreatedAt:  r.CreatedAt(),
		ResolvedAt: r.ResolvedAt(),
	}
}

// purchaseRequestView exposes the buyer's contact details. Only the buyer, the
// seller and administrators can see a purchase.
func purchaseRequestView(r *purchaserequest.PurchaseRequest) EntityView {
	contact := r.Contact()
	amount := r.Amount()

	var resolvedAt *time.Time
	if r.Status().IsTerminal() {
		updatedAt := r.UpdatedAt()
		resolvedAt = &updatedAt
	}

	return EntityView{
		Kind:      workflow.PurchaseRequest.String(),
		ID:        r.ID().String(),
		CreatorID: r.BuyerID().String(),
		TargetID:  r.ProductID().String(),
		Status:    r.Status().String(),
		Price:     &amount,
		Attributes: map[string]any{
			"fullName":        contact.FullName,
			"email":           contact.Email,
			"phone":           contact.Phone,
			"shippingAddress": contact.ShippingAddress,
			"paymentMethod":   contact.PaymentMethod,
		},
		CreatedAt:  r.CreatedAt(),
		ResolvedAt: resolvedAt,
	}
}
