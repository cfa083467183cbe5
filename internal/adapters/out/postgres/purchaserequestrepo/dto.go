// Package purchaserequestrepo persists purchase orders for products.
// Purchases are never deleted; cancelled ones stay as history.
package purchaserequestrepo

import (
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/purchaserequest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseRequestDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	BuyerID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Contact   ContactDTO      `gorm:"embedded;embeddedPrefix:contact_"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status    string          `gorm:"type:varchar(16);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PurchaseRequestDTO) TableName() string {
	return "purchase_requests"
}

type ContactDTO struct {
	FullName        string `gorm:"not null"`
	Email           string `gorm:"not null"`
	Phone           string `gorm:"not null"`
	ShippingAddress string `gorm:"not null"`
	PaymentMethod   string `gorm:"not null"`
}

func fromDomain(r *purchaserequest.PurchaseRequest) PurchaseRequestDTO {
	contact := r.Contact()

	return PurchaseRequestDTO{
		ID:        r.ID().Bytes(),
		ProductID: r.ProductID().Bytes(),
		BuyerID:   r.BuyerID().Bytes(),
		Contact: ContactDTO{
			FullName:        contact.FullName,
			Email:           contact.Email,
			Phone:           contact.Phone,
			ShippingAddress: contact.ShippingAddress,
			PaymentMethod:   contact.PaymentMethod,
		},
		Amount:    r.Amount(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func toDomain(dto PurchaseRequestDTO) (*purchaserequest.PurchaseRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	status, err := purchaserequest.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return purchaserequest.RestorePurchaseRequest(
		id,
		productID,
		buyerID,
		purchaserequest.Contact{
			FullName:        dto.Contact.FullName,
			Email:           dto.Contact.Email,
			Phone:           dto.Contact.Phone,
			ShippingAddress: dto.Contact.ShippingAddress,
			PaymentMethod:   dto.Contact.PaymentMethod,
		},
		dto.Amount,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
