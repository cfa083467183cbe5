package donaterequest

import (
	"errors"
	"strings"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"
)

var ErrDonateRequestIsNotConstructed = errors.New("DonateRequest must be created via NewDonateRequest constructor")

// DonateRequest is a user's ask for a donated item. It references exactly one
// DonateItem; approving it claims that item.
type DonateRequest struct {
	id              kernel.UUID
	itemID          kernel.UUID
	requesterID     kernel.UUID
	description     string
	status          Status
	rejectionReason string
	createdAt       time.Time
	resolvedAt      *time.Time

	isConstructed bool
}

// NewDonateRequest creates a Pending request. Whether the item can take the
// request is decided by the caller, which holds the item under lock.
func NewDonateRequest(id kernel.UUID, itemID kernel.UUID, requesterID kernel.UUID, description string) (*DonateRequest, error) {
	r := &DonateRequest{
		description:   strings.TrimSpace(description),
		status:        Pending,
		createdAt:     now(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setItem(itemID),
		r.setRequester(requesterID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreDonateRequest rebuilds a request from persisted state.
func RestoreDonateRequest(
	id kernel.UUID,
	itemID kernel.UUID,
	requesterID kernel.UUID,
	description string,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*DonateRequest, error) {
	r := &DonateRequest{
		description:     description,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		resolvedAt:      resolvedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setItem(itemID),
		r.setRequester(requesterID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	return r, nil
}

func (r *DonateRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDonateRequestIsNotConstructed
	}
	return nil
}

func (r *DonateRequest) ID() kernel.UUID {
	return r.id
}

// ItemID returns the donated item this request asks for.
func (r *DonateRequest) ItemID() kernel.UUID {
	return r.itemID
}

func (r *DonateRequest) RequesterID() kernel.UUID {
	return r.requesterID
}

func (r *DonateRequest) Description() string {
	return r.description
}

func (r *DonateRequest) Status() Status {
	return r.status
}

func (r *DonateRequest) RejectionReason() string {
	return r.rejectionReason
}

func (r *DonateRequest) CreatedAt() time.Time {
	return r.createdAt
}

// ResolvedAt returns when the request was approved or rejected, nil while pending.
func (r *DonateRequest) ResolvedAt() *time.Time {
	return r.resolvedAt
}

func (r *DonateRequest) IsRequestedBy(actorID kernel.UUID) bool {
	return r.requesterID.IsEqual(actorID)
}

func (r *DonateRequest) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.resolve(newStatus, "")
	return nil
}

func (r *DonateRequest) Reject(reason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	r.resolve(newStatus, strings.TrimSpace(reason))
	return nil
}

func (r *DonateRequest) resolve(status Status, reason string) {
	at := now()
	r.status = status
	r.rejectionReason = reason
	r.resolvedAt = &at
}

func (r *DonateRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *DonateRequest) setItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("donate item", err)
	}
	r.itemID = itemID
	return nil
}

func (r *DonateRequest) setRequester(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester", err)
	}
	r.requesterID = requesterID
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
