package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created through
	// NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Details holds the descriptive attributes of a listing. The workflow engine
// carries them but never interprets them.
type Details struct {
	Name        string
	Category    string
	Type        string
	Condition   string
	Description string
}

// Validate checks that all mandatory attributes are present.
func (d Details) Validate() error {
	var errList []error
	if strings.TrimSpace(d.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(d.Category) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("category"))
	}
	if strings.TrimSpace(d.Type) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("type"))
	}
	if strings.TrimSpace(d.Condition) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("condition"))
	}
	return errors.Join(errList...)
}

// Review records the outcome of the administrator review of a listing.
type Review struct {
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason string
}

// Product is a listing offered by its owner for sale or exchange. It is the
// aggregate root for the listing lifecycle and the target of exchange and
// purchase requests.
//
// Product follows these invariants:
//   - Must have a valid identifier and owner
//   - Price must be positive and is never changed by the workflow
//   - Status transitions follow Status rules; Sold is reached only via Sell
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id      kernel.UUID
	ownerID kernel.UUID
	details Details
	price   decimal.Decimal
	status  Status
	review  Review

	createdAt time.Time

	isConstructed bool
}

// NewProduct creates a listing in Pending status.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), ownerID, product.Details{
//	    Name: "Bike", Category: "Sports", Type: "SALE", Condition: "USED",
//	}, decimal.RequireFromString("120.50"))
func NewProduct(id kernel.UUID, ownerID kernel.UUID, details Details, price decimal.Decimal) (*Product, error) {
	p := &Product{
		status:        Pending,
		createdAt:     now(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwner(ownerID),
		p.setDetails(details),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a listing from persisted state.
// A persisted status outside the closed set is reported as invalid rather than coerced.
func RestoreProduct(
	id kernel.UUID,
	ownerID kernel.UUID,
	details Details,
	price decimal.Decimal,
	status Status,
	review Review,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		review:        review,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwner(ownerID),
		p.setDetails(details),
		p.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	return p, nil
}

// Validate ensures the Product was built through one of its constructors.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) OwnerID() kernel.UUID {
	return p.ownerID
}

func (p *Product) Details() Details {
	return p.details
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Status() Status {
	return p.status
}

func (p *Product) Review() Review {
	return p.review
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// IsOwnedBy reports whether actorID owns the listing.
func (p *Product) IsOwnedBy(actorID kernel.UUID) bool {
	return p.ownerID.IsEqual(actorID)
}

// Approve publishes a pending listing and records the approval time.
func (p *Product) Approve() error {
	newStatus, err := p.status.Approve()
	if err != nil {
		return err
	}

	at := now()
	p.status = newStatus
	p.review = Review{ApprovedAt: &at}
	return nil
}

// Reject declines a pending listing with an optional reason.
func (p *Product) Reject(reason string) error {
	newStatus, err := p.status.Reject()
	if err != nil {
		return err
	}

	at := now()
	p.status = newStatus
	p.review = Review{RejectedAt: &at, RejectionReason: strings.TrimSpace(reason)}
	return nil
}

// Sell retires an approved listing after one of its purchases was delivered.
func (p *Product) Sell() error {
	newStatus, err := p.status.Sell()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	p.ownerID = ownerID
	return nil
}

func (p *Product) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.details = details
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
