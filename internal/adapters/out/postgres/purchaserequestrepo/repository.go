package purchaserequestrepo

import (
	"context"
	"errors"
	"fmt"

	"careshare/internal/adapters/out/postgres/pgerrs"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const paramName = "purchase request"

// GormPurchaseRequestRepository implements ports.PurchaseRequestRepository using GORM.
type GormPurchaseRequestRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRequestRepository(db *gorm.DB) *GormPurchaseRequestRepository {
	return &GormPurchaseRequestRepository{db: db}
}

func (r *GormPurchaseRequestRepository) Add(ctx context.Context, aggregate *purchaserequest.PurchaseRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err, paramName, aggregate.ID().String())
	}
	return nil
}

func (r *GormPurchaseRequestRepository) Update(ctx context.Context, aggregate *purchaserequest.PurchaseRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PurchaseRequestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Classify(result.Error, paramName, aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, aggregate.ID().String())
	}
	return nil
}

func (r *GormPurchaseRequestRepository) Get(ctx context.Context, id kernel.UUID) (*purchaserequest.PurchaseRequest, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *GormPurchaseRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*purchaserequest.PurchaseRequest, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Find lists purchases newest first. It reads committed rows and takes no locks.
func (r *GormPurchaseRequestRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*purchaserequest.PurchaseRequest, error) {
	query := r.db.WithContext(ctx).Model(&PurchaseRequestDTO{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CreatorID != nil {
		query = query.Where("buyer_id = ?", filter.CreatorID.Bytes())
	}
	if filter.TargetOwnerID != nil {
		query = query.Where("product_id IN (SELECT id FROM products WHERE owner_id = ?)", filter.TargetOwnerID.Bytes())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var dtos []PurchaseRequestDTO
	if err := query.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", paramName, err)
	}

	result := make([]*purchaserequest.PurchaseRequest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}
	return result, nil
}

func (r *GormPurchaseRequestRepository) find(db *gorm.DB, id kernel.UUID) (*purchaserequest.PurchaseRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseRequestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.String())
		}
		return nil, pgerrs.Classify(err, paramName, id.String())
	}

	return toDomain(dto)
}
