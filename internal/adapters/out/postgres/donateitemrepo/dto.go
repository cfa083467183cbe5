// Package donateitemrepo provides data transfer objects and the GORM repository
// for donated items.
package donateitemrepo

import (
	"time"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonateItemDTO represents the donate_items table.
type DonateItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonorID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemType        string    `gorm:"not null"`
	ItemName        string    `gorm:"not null"`
	Quantity        int       `gorm:"not null"`
	Condition       string    `gorm:"not null"`
	PickupAddress   string    `gorm:"not null"`
	Status          string    `gorm:"type:varchar(16);index;not null"`
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DonateItemDTO) TableName() string {
	return "donate_items"
}

func fromDomain(item *donateitem.DonateItem) DonateItemDTO {
	details := item.Details()

	return DonateItemDTO{
		ID:              item.ID().Bytes(),
		DonorID:         item.DonorID().Bytes(),
		ItemType:        details.Type,
		ItemName:        details.Name,
		Quantity:        details.Quantity,
		Condition:       details.Condition,
		PickupAddress:   details.PickupAddress,
		Status:          item.Status().String(),
		RejectionReason: item.RejectionReason(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

func toDomain(dto DonateItemDTO) (*donateitem.DonateItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}
	status, err := donateitem.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return donateitem.RestoreDonateItem(
		id,
		donorID,
		donateitem.Details{
			Type:          dto.ItemType,
			Name:          dto.ItemName,
			Quantity:      dto.Quantity,
			Condition:     dto.Condition,
			PickupAddress: dto.PickupAddress,
		},
		status,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
