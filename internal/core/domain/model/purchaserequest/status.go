package purchaserequest

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Status represents the fulfilment state of a purchase.
// Purchases only move forward; any non-terminal purchase may be cancelled.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a purchase awaiting seller confirmation.
	Pending

	// Confirmed purchases were accepted by the seller.
	Confirmed

	// Shipped purchases are on their way to the buyer.
	Shipped

	// Delivered purchases reached the buyer; the product becomes Sold.
	Delivered

	// Cancelled purchases were abandoned before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a purchase status", s))
}

func Statuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Delivered, Cancelled}
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the purchase is finished (Delivered or Cancelled).
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.step(Pending, Confirmed, "confirm")
}

// Ship transitions Confirmed -> Shipped.
func (s Status) Ship() (Status, error) {
	return s.step(Confirmed, Shipped, "ship")
}

// Deliver transitions Shipped -> Delivered.
func (s Status) Deliver() (Status, error) {
	return s.step(Shipped, Delivered, "deliver")
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil || s.IsTerminal() {
		return 0, errs.NewInvalidStateError("purchase request", s.String(), "cancel")
	}
	return Cancelled, nil
}

func (s Status) step(from Status, to Status, action string) (Status, error) {
	if s != from {
		return 0, errs.NewInvalidStateError("purchase request", s.String(), action)
	}
	return to, nil
}
