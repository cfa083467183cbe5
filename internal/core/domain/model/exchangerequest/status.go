package exchangerequest

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Status represents the state of an exchange offer made against a product.
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// A Pending request may also be withdrawn by its requester, which removes it.
type Status int

const (
	Unknown Status = iota
	Pending
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
	}
}

func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not an exchange request status", s))
}

func Statuses() []Status {
	return []Status{Pending, Approved, Rejected}
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

// Approve accepts the offer (Pending -> Approved).
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("exchange request", s.String(), "approve")
	}
	return Approved, nil
}

// Reject declines the offer (Pending -> Rejected).
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("exchange request", s.String(), "reject")
	}
	return Rejected, nil
}

func (s Status) ValidateCancel() error {
	if s != Pending {
		return errs.NewInvalidStateError("exchange request", s.String(), "cancel")
	}
	return nil
}
