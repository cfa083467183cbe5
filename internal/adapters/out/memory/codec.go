package memory

import (
	"time"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/purchaserequest"
)

// codec tells a table how to copy, identify and index one aggregate type.
type codec[T any] struct {
	id     func(T) kernel.UUID
	status func(T) string
	clone  func(T) (T, error)
	// creator is the owner, donor, requester or buyer of the row.
	creator   func(T) kernel.UUID
	createdAt func(T) time.Time
	// uniqueKey returns the key of a unique constraint the row takes part in,
	// or false when the row is exempt.
	uniqueKey func(T) (string, bool)
}

func productCodec() codec[*product.Product] {
	return codec[*product.Product]{
		id:        (*product.Product).ID,
		creator:   (*product.Product).OwnerID,
		createdAt: (*product.Product).CreatedAt,
		status:    func(p *product.Product) string { return p.Status().String() },
		clone: func(p *product.Product) (*product.Product, error) {
			return product.RestoreProduct(p.ID(), p.OwnerID(), p.Details(), p.Price(), p.Status(), p.Review(), p.CreatedAt())
		},
	}
}

func donateItemCodec() codec[*donateitem.DonateItem] {
	return codec[*donateitem.DonateItem]{
		id:        (*donateitem.DonateItem).ID,
		creator:   (*donateitem.DonateItem).DonorID,
		createdAt: (*donateitem.DonateItem).CreatedAt,
		status:    func(i *donateitem.DonateItem) string { return i.Status().String() },
		clone: func(i *donateitem.DonateItem) (*donateitem.DonateItem, error) {
			return donateitem.RestoreDonateItem(
				i.ID(), i.DonorID(), i.Details(), i.Status(), i.RejectionReason(), i.CreatedAt(), i.UpdatedAt())
		},
	}
}

func donateRequestCodec() codec[*donaterequest.DonateRequest] {
	return codec[*donaterequest.DonateRequest]{
		id:        (*donaterequest.DonateRequest).ID,
		creator:   (*donaterequest.DonateRequest).RequesterID,
		createdAt: (*donaterequest.DonateRequest).CreatedAt,
		status:    func(r *donaterequest.DonateRequest) string { return r.Status().String() },
		clone: func(r *donaterequest.DonateRequest) (*donaterequest.DonateRequest, error) {
			return donaterequest.RestoreDonateRequest(r.ID(), r.ItemID(), r.RequesterID(), r.Description(),
				r.Status(), r.RejectionReason(), r.CreatedAt(), r.ResolvedAt())
		},
		// One non-rejected request per requester and item.
		uniqueKey: func(r *donaterequest.DonateRequest) (string, bool) {
			if r.Status() == donaterequest.Rejected {
				return "", false
			}
			return r.ItemID().String() + "/" + r.RequesterID().String(), true
		},
	}
}

func exchangeRequestCodec() codec[*exchangerequest.ExchangeRequest] {
	return codec[*exchangerequest.ExchangeRequest]{
		id:        (*exchangerequest.ExchangeRequest).ID,
		creator:   (*exchangerequest.ExchangeRequest).RequesterID,
		createdAt: (*exchangerequest.ExchangeRequest).CreatedAt,
		status:    func(r *exchangerequest.ExchangeRequest) string { return r.Status().String() },
		clone: func(r *exchangerequest.ExchangeRequest) (*exchangerequest.ExchangeRequest, error) {
			return exchangerequest.RestoreExchangeRequest(r.ID(), r.ProductID(), r.RequesterID(), r.Offer(),
				r.Status(), r.RejectionReason(), r.CreatedAt(), r.ResolvedAt())
		},
	}
}

func purchaseRequestCodec() codec[*purchaserequest.PurchaseRequest] {
	return codec[*purchaserequest.PurchaseRequest]{
		id:        (*purchaserequest.PurchaseRequest).ID,
		creator:   (*purchaserequest.PurchaseRequest).BuyerID,
		createdAt: (*purchaserequest.PurchaseRequest).CreatedAt,
		status:    func(r *purchaserequest.PurchaseRequest) string { return r.Status().String() },
		clone: func(r *purchaserequest.PurchaseRequest) (*purchaserequest.PurchaseRequest, error) {
			return purchaserequest.RestorePurchaseRequest(r.ID(), r.ProductID(), r.BuyerID(), r.Contact(),
				r.Amount(), r.Status(), r.CreatedAt(), r.UpdatedAt())
		},
	}
}
