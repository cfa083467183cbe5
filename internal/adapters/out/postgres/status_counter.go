package postgres

import (
	"context"
	"fmt"

	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusCounter implements ports.StatusCounter with plain COUNT queries.
// It reads outside any transaction, so figures may lag concurrent commits.
type GormStatusCounter struct {
	db *gorm.DB
}

func NewGormStatusCounter(db *gorm.DB) *GormStatusCounter {
	return &GormStatusCounter{db: db}
}

func (c *GormStatusCounter) CountByStatus(ctx context.Context, kind workflow.Kind, status *string) (int64, error) {
	table, err := tableOf(kind)
	if err != nil {
		return 0, err
	}

	query := c.db.WithContext(ctx).Table(table)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

func tableOf(kind workflow.Kind) (string, error) {
	switch kind {
	case workflow.Product:
		return "products", nil
	case workflow.DonateItem:
		return "donate_items", nil
	case workflow.DonateRequest:
		return "donate_requests", nil
	case workflow.ExchangeRequest:
		return "exchange_requests", nil
	case workflow.PurchaseRequest:
		return "purchase_requests", nil
	default:
		return "", errs.NewValueIsInvalidError("entity kind")
	}
}
