package workflow

import (
	"fmt"
	"strings"

	"careshare/internal/pkg/errs"
)

// Action is an operation an actor asks the engine to perform on an entity.
type Action int

const (
	UnknownAction Action = iota
	Approve
	Reject
	Cancel
	Confirm
	Ship
	Deliver
	Delete
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction: "unknown",
		Approve:       "approve",
		Reject:        "reject",
		Cancel:        "cancel",
		Confirm:       "confirm",
		Ship:          "ship",
		Deliver:       "deliver",
		Delete:        "delete",
	}
}

// getActionAliases maps the vocabulary used by exchange owners to the canonical actions.
func getActionAliases() map[string]Action {
	return map[string]Action{
		"accept":  Approve,
		"decline": Reject,
	}
}

// getStatusActions maps a requested target status to the action that reaches it.
func getStatusActions() map[string]Action {
	return map[string]Action{
		"APPROVED":  Approve,
		"REJECTED":  Reject,
		"CANCELLED": Cancel,
		"CONFIRMED": Confirm,
		"SHIPPED":   Ship,
		"DELIVERED": Deliver,
	}
}

// ParseAction converts an action name, or one of its aliases, to an Action.
func ParseAction(s string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if action, ok := getActionAliases()[normalized]; ok {
		return action, nil
	}
	for action, name := range getActionStrings() {
		if action != UnknownAction && name == normalized {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not an action", s))
}

// ActionForStatus returns the action that moves an entity to the requested status,
// so that "set status to SHIPPED" is handled as "ship".
func ActionForStatus(status string) (Action, error) {
	if action, ok := getStatusActions()[strings.ToUpper(strings.TrimSpace(status))]; ok {
		return action, nil
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q cannot be requested", status))
}

func (a Action) Validate() error {
	if a <= UnknownAction || a > Delete {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
