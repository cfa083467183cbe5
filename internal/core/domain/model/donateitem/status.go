package donateitem

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Status represents the lifecycle state of a donated item.
//
//	Pending ──┬──> Approved ──> Claimed
//	          └──> Rejected
//
// Claimed is reached only when a donate request for the item is approved.
type Status int

const (
	Unknown Status = iota
	Pending
	Approved
	Rejected
	Claimed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
		Claimed:  "CLAIMED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
		Claimed:  "CLAIMED",
	}
}

// ParseStatus converts a status name to a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a donate item status", s))
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Approved, Rejected, Claimed}
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

func (s Status) IsTerminal() bool {
	return s == Rejected || s == Claimed
}

// ValidateAcceptsRequests checks that the item may receive new donate requests.
func (s Status) ValidateAcceptsRequests() error {
	if s != Approved {
		return errs.NewInvalidStateError("donate item", s.String(), "new requests")
	}
	return nil
}

// ValidateDelete checks that the donor may withdraw the item. Items that were
// published (Approved) or handed over (Claimed) are kept.
func (s Status) ValidateDelete() error {
	if s != Pending && s != Rejected {
		return errs.NewInvalidStateError("donate item", s.String(), "delete")
	}
	return nil
}

func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("donate item", s.String(), "approve")
	}
	return Approved, nil
}

func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("donate item", s.String(), "reject")
	}
	return Rejected, nil
}

// Claim transitions Approved -> Claimed.
func (s Status) Claim() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidStateError("donate item", s.String(), "claim")
	}
	return Claimed, nil
}
