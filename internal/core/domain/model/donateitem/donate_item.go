package donateitem

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"
)

var ErrDonateItemIsNotConstructed = errors.New("DonateItem must be created via NewDonateItem constructor")

// Details describes the donated goods and where they can be collected.
type Details struct {
	Type          string
	Name          string
	Quantity      int
	Condition     string
	PickupAddress string
}

func (d Details) Validate() error {
	var errList []error
	if strings.TrimSpace(d.Type) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item type"))
	}
	if strings.TrimSpace(d.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if d.Quantity <= 0 {
		errList = append(errList,
			errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", d.Quantity)))
	}
	if strings.TrimSpace(d.Condition) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item condition"))
	}
	if strings.TrimSpace(d.PickupAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	return errors.Join(errList...)
}

// DonateItem is goods offered for free by a donor. Once approved, other users
// may ask for it through donate requests; approving one of them claims the item.
type DonateItem struct {
	id              kernel.UUID
	donorID         kernel.UUID
	details         Details
	status          Status
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewDonateItem creates an item in Pending status.
func NewDonateItem(id kernel.UUID, donorID kernel.UUID, details Details) (*DonateItem, error) {
	createdAt := now()
	item := &DonateItem{
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDonor(donorID),
		item.setDetails(details),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreDonateItem rebuilds an item from persisted state.
func RestoreDonateItem(
	id kernel.UUID,
	donorID kernel.UUID,
	details Details,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*DonateItem, error) {
	item := &DonateItem{
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setDonor(donorID),
		item.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	item.status = status

	return item, nil
}

func (i *DonateItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrDonateItemIsNotConstructed
	}
	return nil
}

func (i *DonateItem) ID() kernel.UUID { return i.id }
func (i *DonateItem) DonorID() kernel.UUID { return i.donorID }
func (i *DonateItem) Details() Details { return i.details }
func (i *DonateItem) Status() Status { return i.status }
func (i *DonateItem) RejectionReason() string { return i.rejectionReason }
func (i *DonateItem) CreatedAt() time.Time { return i.createdAt }
func (i *DonateItem) UpdatedAt() time.Time { return i.updatedAt }

func (i *DonateItem) IsOwnedBy(actorID kernel.UUID) bool {
	return i.donorID.IsEqual(actorID)
}

func (i *DonateItem) Approve() error {
	newStatus, err := i.status.Approve()
	if err != nil {
		return err
	}
	i.status = newStatus
	i.rejectionReason = ""
	i.updatedAt = now()
	return nil
}

func (i *DonateItem) Reject(reason string) error {
	newStatus, err := i.status.Reject()
	if err != nil {
		return err
	}
	i.status = newStatus
	i.rejectionReason = strings.TrimSpace(reason)
	i.updatedAt = now()
	return nil
}

// Claim marks the item as handed over to an approved requester.
func (i *DonateItem) Claim() error {
	newStatus, err := i.status.Claim()
	if err != nil {
		return err
	}
	i.status = newStatus
	i.updatedAt = now()
	return nil
}

func (i *DonateItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *DonateItem) setDonor(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("donor", err)
	}
	i.donorID = donorID
	return nil
}

func (i *DonateItem) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	i.details = details
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
