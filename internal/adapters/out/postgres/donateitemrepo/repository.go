package donateitemrepo

import (
	"context"
	"errors"
	"fmt"

	"careshare/internal/adapters/out/postgres/pgerrs"
	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const paramName = "donate item"

// GormDonateItemRepository implements ports.DonateItemRepository using GORM.
type GormDonateItemRepository struct {
	db *gorm.DB
}

func NewGormDonateItemRepository(db *gorm.DB) *GormDonateItemRepository {
	return &GormDonateItemRepository{db: db}
}

func (r *GormDonateItemRepository) Add(ctx context.Context, aggregate *donateitem.DonateItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err, paramName, aggregate.ID().String())
	}
	return nil
}

func (r *GormDonateItemRepository) Update(ctx context.Context, aggregate *donateitem.DonateItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DonateItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Classify(result.Error, paramName, aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, aggregate.ID().String())
	}
	return nil
}

// Delete removes the item row. Deleting an unknown item is reported as not found.
func (r *GormDonateItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DonateItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Classify(result.Error, paramName, id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}
	return nil
}

func (r *GormDonateItemRepository) Get(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *GormDonateItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donateitem.DonateItem, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Find lists items newest first. It reads committed rows and takes no locks.
func (r *GormDonateItemRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*donateitem.DonateItem, error) {
	query := r.db.WithContext(ctx).Model(&DonateItemDTO{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CreatorID != nil {
		query = query.Where("donor_id = ?", filter.CreatorID.Bytes())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var dtos []DonateItemDTO
	if err := query.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", paramName, err)
	}

	result := make([]*donateitem.DonateItem, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}
	return result, nil
}

func (r *GormDonateItemRepository) find(db *gorm.DB, id kernel.UUID) (*donateitem.DonateItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonateItemDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.String())
		}
		return nil, pgerrs.Classify(err, paramName, id.String())
	}

	return toDomain(dto)
}
