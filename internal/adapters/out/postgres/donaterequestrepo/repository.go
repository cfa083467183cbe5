package donaterequestrepo

import (
	"context"
	"errors"
	"fmt"

	"careshare/internal/adapters/out/postgres/pgerrs"
	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const paramName = "donate request"

// GormDonateRequestRepository implements ports.DonateRequestRepository using GORM.
type GormDonateRequestRepository struct {
	db *gorm.DB
}

func NewGormDonateRequestRepository(db *gorm.DB) *GormDonateRequestRepository {
	return &GormDonateRequestRepository{db: db}
}

// Add inserts a new request. A second active request for the same item and
// requester violates the partial unique index and is reported as a duplicate.
func (r *GormDonateRequestRepository) Add(ctx context.Context, aggregate *donaterequest.DonateRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err, paramName, aggregate.ItemID().String())
	}
	return nil
}

func (r *GormDonateRequestRepository) Update(ctx context.Context, aggregate *donaterequest.DonateRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DonateRequestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Classify(result.Error, paramName, aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, aggregate.ID().String())
	}
	return nil
}

func (r *GormDonateRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DonateRequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Classify(result.Error, paramName, id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, id.String())
	}
	return nil
}

func (r *GormDonateRequestRepository) Get(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *GormDonateRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// HasActiveRequest counts Pending and Approved requests of requesterID for itemID.
func (r *GormDonateRequestRepository) HasActiveRequest(
	ctx context.Context,
	itemID kernel.UUID,
	requesterID kernel.UUID,
) (bool, error) {
	if err := errors.Join(itemID.Validate(), requesterID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DonateRequestDTO{}).
		Where("item_id = ? AND requester_id = ? AND status IN ?", itemID.Bytes(), requesterID.Bytes(), activeStatuses()).
		Count(&count).Error
	if err != nil {
		return false, pgerrs.Classify(err, paramName, itemID.String())
	}
	return count > 0, nil
}

// Find lists requests newest first. It reads committed rows and takes no locks.
func (r *GormDonateRequestRepository) Find(ctx context.Context, filter ports.ListFilter) ([]*donaterequest.DonateRequest, error) {
	query := r.db.WithContext(ctx).Model(&DonateRequestDTO{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CreatorID != nil {
		query = query.Where("requester_id = ?", filter.CreatorID.Bytes())
	}
	if filter.TargetOwnerID != nil {
		query = query.Where("item_id IN (SELECT id FROM donate_items WHERE donor_id = ?)", filter.TargetOwnerID.Bytes())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var dtos []DonateRequestDTO
	if err := query.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", paramName, err)
	}

	result := make([]*donaterequest.DonateRequest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, aggregate)
	}
	return result, nil
}

func (r *GormDonateRequestRepository) find(db *gorm.DB, id kernel.UUID) (*donaterequest.DonateRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonateRequestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id.String())
		}
		return nil, pgerrs.Classify(err, paramName, id.String())
	}

	return toDomain(dto)
}
