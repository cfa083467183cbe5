// Package donaterequestrepo persists requests for donated items.
package donaterequestrepo

import (
	"time"

	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonateRequestDTO represents the donate_requests table. The partial unique
// index keeps at most one non-rejected request per requester and item, backing
// the duplicate check done under the item lock.
type DonateRequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donate_requests_active,where:status <> 'REJECTED'"`
	RequesterID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donate_requests_active"`
	Description     string
	Status          string `gorm:"type:varchar(16);index;not null"`
	RejectionReason string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}

func (DonateRequestDTO) TableName() string {
	return "donate_requests"
}

func fromDomain(r *donaterequest.DonateRequest) DonateRequestDTO {
	return DonateRequestDTO{
		ID:              r.ID().Bytes(),
		ItemID:          r.ItemID().Bytes(),
		RequesterID:     r.RequesterID().Bytes(),
		Description:     r.Description(),
		Status:          r.Status().String(),
		RejectionReason: r.RejectionReason(),
		CreatedAt:       r.CreatedAt(),
		ResolvedAt:      r.ResolvedAt(),
	}
}

func toDomain(dto DonateRequestDTO) (*donaterequest.DonateRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	status, err := donaterequest.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return donaterequest.RestoreDonateRequest(
		id,
		itemID,
		requesterID,
		dto.Description,
		status,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.ResolvedAt,
	)
}

func activeStatuses() []string {
	active := make([]string, 0, 2)
	for _, status := range donaterequest.Statuses() {
		if status.IsActive() {
			active = append(active, status.String())
		}
	}
	return active
}
