package product

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Status represents the lifecycle state of a product listing.
//
// State transitions:
//
//	Pending ──┬──> Approved ──> Sold
//	          │
//	          └──> Rejected
//
// Sold and Rejected are terminal. Sold is reached only as a consequence of a
// delivered purchase, never by a direct action on the product.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a listing awaiting administrator review.
	Pending

	// Approved listings are visible and may receive exchange and purchase requests.
	Approved

	// Rejected listings were declined by an administrator.
	Rejected

	// Sold listings were delivered to a buyer.
	Sold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
		Sold:     "SOLD",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
		Sold:     "SOLD",
	}
}

// ParseStatus converts a persisted or user supplied name ("APPROVED", "approved") to a Status.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a product status", s))
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Approved, Rejected, Sold}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("PENDING", "APPROVED", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Sold
}

// ValidateAcceptsRequests checks that a listing in this status may receive
// new exchange or purchase requests. Only Approved listings do.
func (s Status) ValidateAcceptsRequests() error {
	if s != Approved {
		return errs.NewInvalidStateError("product", s.String(), "new requests")
	}
	return nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("product", s.String(), "approve")
	}
	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("product", s.String(), "reject")
	}
	return Rejected, nil
}

// Sell transitions the status to Sold.
//
// Valid transitions:
//   - Approved -> Sold
//
// A product that is already Sold cannot be sold again, so a second delivered
// purchase for the same listing is refused.
func (s Status) Sell() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("product", s.String(), "sell")
	}
	return Sold, nil
}
