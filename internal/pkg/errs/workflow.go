package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden         = errors.New("action is forbidden")
	ErrInvalidState      = errors.New("invalid state")
	ErrDuplicateRequest  = errors.New("duplicate request")
	ErrTargetUnavailable = errors.New("target is unavailable")
	ErrStoreConflict     = errors.New("store conflict")
	ErrNotifierFailure   = errors.New("notifier failure")
)

// ForbiddenError reports that the actor does not hold the role an action requires.
type ForbiddenError struct {
	Action string
	Role   string
}

func NewForbiddenError(action string, role string) *ForbiddenError {
	return &ForbiddenError{
		Action: action,
		Role:   role,
	}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s requires %s", ErrForbidden, e.Action, e.Role)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError reports an action requested from a status that does not allow it.
type InvalidStateError struct {
	Kind      string
	Current   string
	Requested string
}

func NewInvalidStateError(kind string, current string, requested string) *InvalidStateError {
	return &InvalidStateError{
		Kind:      kind,
		Current:   current,
		Requested: requested,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s in status %s does not allow %s", ErrInvalidState, e.Kind, e.Current, e.Requested)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// DuplicateRequestError reports an active request already held by the same requester.
type DuplicateRequestError struct {
	ParamName string
	ID        any
}

func NewDuplicateRequestError(paramName string, id any) *DuplicateRequestError {
	return &DuplicateRequestError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("%s: %s %s already has an active request", ErrDuplicateRequest, e.ParamName, e.ID)
}

func (e *DuplicateRequestError) Unwrap() error {
	return ErrDuplicateRequest
}

// TargetUnavailableError reports a linked entity that is not in the status a request needs.
type TargetUnavailableError struct {
	Kind   string
	ID     any
	Status string
}

func NewTargetUnavailableError(kind string, id any, status string) *TargetUnavailableError {
	return &TargetUnavailableError{
		Kind:   kind,
		ID:     id,
		Status: status,
	}
}

func (e *TargetUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s %s is %s", ErrTargetUnavailable, e.Kind, e.ID, e.Status)
}

func (e *TargetUnavailableError) Unwrap() error {
	return ErrTargetUnavailable
}

// StoreConflictError reports a lost race against a concurrent writer.
type StoreConflictError struct {
	ParamName string
	Cause     error
}

func NewStoreConflictError(paramName string) *StoreConflictError {
	return &StoreConflictError{
		ParamName: paramName,
	}
}

func NewStoreConflictErrorWithCause(paramName string, cause error) *StoreConflictError {
	return &StoreConflictError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *StoreConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreConflict, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreConflict, e.ParamName)
}

func (e *StoreConflictError) Unwrap() error {
	return ErrStoreConflict
}

// NotifierFailureError reports a notification that could not be delivered.
type NotifierFailureError struct {
	Sink  string
	Cause error
}

func NewNotifierFailureError(sink string, cause error) *NotifierFailureError {
	return &NotifierFailureError{
		Sink:  sink,
		Cause: cause,
	}
}

func (e *NotifierFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotifierFailure, e.Sink, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotifierFailure, e.Sink)
}

func (e *NotifierFailureError) Unwrap() error {
	return ErrNotifierFailure
}
