package donaterequest

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Status represents the state of a request for a donated item.
//
//	Pending ──┬──> Approved
//	          └──> Rejected
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a donate request status", s))
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

// IsActive reports whether a request in this status blocks another request
// by the same user for the same item.
func (s Status) IsActive() bool {
	return s == Pending || s == Approved
}

func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("donate request", s.String(), "approve")
	}
	return Approved, nil
}

func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("donate request", s.String(), "reject")
	}
	return Rejected, nil
}

// ValidateCancel allows the requester to withdraw only while the request is undecided.
func (s Status) ValidateCancel() error {
	if s != Pending {
		return errs.NewInvalidStateError("donate request", s.String(), "cancel")
	}
	return nil
}
