package exchangerequest

import (
	"errors"
	"strings"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"
)

const (
	MinImages = 1
	MaxImages = 12
)

var ErrExchangeRequestIsNotConstructed = errors.New("ExchangeRequest must be created via NewExchangeRequest constructor")

// Offer describes the item the requester proposes in exchange.
// Images are stored by a collaborator; only their count is carried here.
type Offer struct {
	ItemName    string
	Category    string
	Description string
	ImageCount  int
	Message     string
}

func (o Offer) Validate() error {
	var errList []error
	if strings.TrimSpace(o.ItemName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("exchange item name"))
	}
	if strings.TrimSpace(o.Category) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("exchange item category"))
	}
	if o.ImageCount < MinImages || o.ImageCount > MaxImages {
		errList = append(errList, errs.NewValueIsOutOfRangeError("image count", o.ImageCount, MinImages, MaxImages))
	}
	return errors.Join(errList...)
}

// ExchangeRequest is an offer to swap an item for a listed product.
// The product owner (or an administrator) decides it.
type ExchangeRequest struct {
	id              kernel.UUID
	productID       kernel.UUID
	requesterID     kernel.UUID
	offer           Offer
	status          Status
	rejectionReason string
	createdAt       time.Time
	resolvedAt      *time.Time

	isConstructed bool
}

func NewExchangeRequest(id kernel.UUID, productID kernel.UUID, requesterID kernel.UUID, offer Offer) (*ExchangeRequest, error) {
	r := &ExchangeRequest{
		status:        Pending,
		createdAt:     now(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProduct(productID),
		r.setRequester(requesterID),
		r.setOffer(offer),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreExchangeRequest rebuilds a request from persisted state. The image
// count bound is not re-checked so that historic rows always load.
func RestoreExchangeRequest(
	id kernel.UUID,
	productID kernel.UUID,
	requesterID kernel.UUID,
	offer Offer,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*ExchangeRequest, error) {
	r := &ExchangeRequest{
		offer:           offer,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		resolvedAt:      resolvedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProduct(productID),
		r.setRequester(requesterID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	return r, nil
}

func (r *ExchangeRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrExchangeRequestIsNotConstructed
	}
	return nil
}

func (r *ExchangeRequest) ID() kernel.UUID {
	return r.id
}

// ProductID returns the listing the offer targets.
func (r *ExchangeRequest) ProductID() kernel.UUID {
	return r.productID
}

func (r *ExchangeRequest) RequesterID() kernel.UUID {
	return r.requesterID
}

func (r *ExchangeRequest) Offer() Offer {
	return r.offer
}

func (r *ExchangeRequest) Status() Status {
	return r.status
}

func (r *ExchangeRequest) RejectionReason() string {
	return r.rejectionReason
}

func (r *ExchangeRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ExchangeRequest) ResolvedAt() *time.Time {
	return r.resolvedAt
}

func (r *ExchangeRequest) IsRequestedBy(actorID kernel.UUID) bool {
	return r.requesterID.IsEqual(actorID)
}

func (r *ExchangeRequest) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.resolve(newStatus, "")
	return nil
}

func (r *ExchangeRequest) Reject(reason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	r.resolve(newStatus, strings.TrimSpace(reason))
	return nil
}

func (r *ExchangeRequest) resolve(status Status, reason string) {
	at := now()
	r.status = status
	r.rejectionReason = reason
	r.resolvedAt = &at
}

func (r *ExchangeRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *ExchangeRequest) setProduct(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("target product", err)
	}
	r.productID = productID
	return nil
}

func (r *ExchangeRequest) setRequester(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester", err)
	}
	r.requesterID = requesterID
	return nil
}

func (r *ExchangeRequest) setOffer(offer Offer) error {
	if err := offer.Validate(); err != nil {
		return err
	}
	offer.Description = strings.TrimSpace(offer.Description)
	offer.Message = strings.TrimSpace(offer.Message)
	r.offer = offer
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
