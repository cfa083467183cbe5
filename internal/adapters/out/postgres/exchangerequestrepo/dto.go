// Package exchangerequestrepo persists exchange offers made against products.
package exchangerequestrepo

import (
	"time"

	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExchangeRequestDTO represents the exchange_requests table. The offered item
// is embedded with an offer_ prefix.
type ExchangeRequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RequesterID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Offer           OfferDTO  `gorm:"embedded;embeddedPrefix:offer_"`
	Status          string    `gorm:"type:varchar(16);index;not null"`
	RejectionReason string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}

func (ExchangeRequestDTO) TableName() string {
	return "exchange_requests"
}

type OfferDTO struct {
	ItemName    string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Description string
	ImageCount  int `gorm:"type:smallint"`
	Message     string
}

func fromDomain(r *exchangerequest.ExchangeRequest) ExchangeRequestDTO {
	offer := r.Offer()

	return ExchangeRequestDTO{
		ID:          r.ID().Bytes(),
		ProductID:   r.ProductID().Bytes(),
		RequesterID: r.RequesterID().Bytes(),
		Offer: OfferDTO{
			ItemName:    offer.ItemName,
			Category:    offer.Category,
			Description: offer.Description,
			ImageCount:  offer.ImageCount,
			Message:     offer.Message,
		},
		Status:          r.Status().String(),
		RejectionReason: r.RejectionReason(),
		CreatedAt:       r.CreatedAt(),
		ResolvedAt:      r.ResolvedAt(),
	}
}

func toDomain(dto ExchangeRequestDTO) (*exchangerequest.ExchangeRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	status, err := exchangerequest.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return exchangerequest.RestoreExchangeRequest(
		id,
		productID,
		requesterID,
		exchangerequest.Offer{
			ItemName:    dto.Offer.ItemName,
			Category:    dto.Offer.Category,
			Description: dto.Offer.Description,
			ImageCount:  dto.Offer.ImageCount,
			Message:     dto.Offer.Message,
		},
		status,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.ResolvedAt,
	)
}
