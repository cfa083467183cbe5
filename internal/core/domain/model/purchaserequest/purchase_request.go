package purchaserequest

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseRequestIsNotConstructed is returned when a PurchaseRequest was not
	// created through NewPurchaseRequest or RestorePurchaseRequest.
	ErrPurchaseRequestIsNotConstructed = errors.New("PurchaseRequest must be created via NewPurchaseRequest constructor")
)

// Contact holds the buyer's delivery and payment details.
type Contact struct {
	FullName        string
	Email           string
	Phone           string
	ShippingAddress string
	PaymentMethod   string
}

// Validate checks that every contact field is present and the email is well formed.
func (c Contact) Validate() error {
	var errList []error
	if strings.TrimSpace(c.FullName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("full name"))
	}
	if strings.TrimSpace(c.Email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("email", err))
	}
	if strings.TrimSpace(c.Phone) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if strings.TrimSpace(c.ShippingAddress) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("shipping address"))
	}
	if strings.TrimSpace(c.PaymentMethod) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("payment method"))
	}
	return errors.Join(errList...)
}

// PurchaseRequest is a buyer's order for a listed product.
//
// PurchaseRequest follows these invariants:
//   - Amount is the product price at creation time and never changes afterwards
//   - Status only moves forward, or to Cancelled from a non-terminal status
//   - References exactly one product
type PurchaseRequest struct {
	id        kernel.UUID
	productID kernel.UUID
	buyerID   kernel.UUID
	contact   Contact
	amount    decimal.Decimal
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPurchaseRequest creates a Pending purchase. amount must be the product's
// current price; it is snapshotted here.
//
// Example:
//
//	pr, err := purchaserequest.NewPurchaseRequest(kernel.NewUUID(), p.ID(), buyerID, contact, p.Price())
func NewPurchaseRequest(
	id kernel.UUID,
	productID kernel.UUID,
	buyerID kernel.UUID,
	contact Contact,
	amount decimal.Decimal,
) (*PurchaseRequest, error) {
	createdAt := now()
	r := &PurchaseRequest{
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProduct(productID),
		r.setBuyer(buyerID),
		r.setContact(contact),
		r.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestorePurchaseRequest rebuilds a purchase from persisted state.
func RestorePurchaseRequest(
	id kernel.UUID,
	productID kernel.UUID,
	buyerID kernel.UUID,
	contact Contact,
	amount decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*PurchaseRequest, error) {
	r := &PurchaseRequest{
		contact:       contact,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProduct(productID),
		r.setBuyer(buyerID),
		r.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	return r, nil
}

func (r *PurchaseRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPurchaseRequestIsNotConstructed
	}
	return nil
}

func (r *PurchaseRequest) ID() kernel.UUID {
	return r.id
}

func (r *PurchaseRequest) ProductID() kernel.UUID {
	return r.productID
}

func (r *PurchaseRequest) BuyerID() kernel.UUID {
	return r.buyerID
}

func (r *PurchaseRequest) Contact() Contact {
	return r.contact
}

// Amount returns the price snapshot taken when the purchase was created.
func (r *PurchaseRequest) Amount() decimal.Decimal {
	return r.amount
}

func (r *PurchaseRequest) Status() Status {
	return r.status
}

func (r *PurchaseRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *PurchaseRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *PurchaseRequest) IsBoughtBy(actorID kernel.UUID) bool {
	return r.buyerID.IsEqual(actorID)
}

func (r *PurchaseRequest) Confirm() error {
	return r.apply(r.status.Confirm)
}

func (r *PurchaseRequest) Ship() error {
	return r.apply(r.status.Ship)
}

// Deliver completes the purchase. The caller is responsible for selling the product
// in the same unit of work.
func (r *PurchaseRequest) Deliver() error {
	return r.apply(r.status.Deliver)
}

func (r *PurchaseRequest) Cancel() error {
	return r.apply(r.status.Cancel)
}

func (r *PurchaseRequest) apply(transition func() (Status, error)) error {
	newStatus, err := transition()
	if err != nil {
		return err
	}
	r.status = newStatus
	r.updatedAt = now()
	return nil
}

func (r *PurchaseRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *PurchaseRequest) setProduct(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product", err)
	}
	r.productID = productID
	return nil
}

func (r *PurchaseRequest) setBuyer(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer", err)
	}
	r.buyerID = buyerID
	return nil
}

func (r *PurchaseRequest) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	r.contact = contact
	return nil
}

func (r *PurchaseRequest) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%s is not greater than 0", amount))
	}
	r.amount = amount
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
