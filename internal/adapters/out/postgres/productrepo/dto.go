// Package productrepo persists product listings with GORM.
package productrepo

import (
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row layout of the products table. Status is stored by
// name so counts and ad hoc queries read naturally.
type ProductDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name            string          `gorm:"not null"`
	Category        string          `gorm:"not null"`
	Type            string          `gorm:"not null"`
	Condition       string          `gorm:"not null"`
	Description     string
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(16);index;not null"`
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason string
	CreatedAt       time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	details := p.Details()
	review := p.Review()

	return ProductDTO{
		ID:              p.ID().Bytes(),
		OwnerID:         p.OwnerID().Bytes(),
		Name:            details.Name,
		Category:        details.Category,
		Type:            details.Type,
		Condition:       details.Condition,
		Description:     details.Description,
		Price:           p.Price(),
		Status:          p.Status().String(),
		ApprovedAt:      review.ApprovedAt,
		RejectedAt:      review.RejectedAt,
		RejectionReason: review.RejectionReason,
		CreatedAt:       p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	status, err := product.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		ownerID,
		product.Details{
			Name:        dto.Name,
			Category:    dto.Category,
			Type:        dto.Type,
			Condition:   dto.Condition,
			Description: dto.Description,
		},
		dto.Price,
		status,
		product.Review{
			ApprovedAt:      dto.ApprovedAt,
			RejectedAt:      dto.RejectedAt,
			RejectionReason: dto.RejectionReason,
		},
		dto.CreatedAt,
	)
}
