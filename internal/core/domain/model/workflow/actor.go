package workflow

import (
	"fmt"
	"strings"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/pkg/errs"
)

// Role is the platform role of an actor.
type Role int

const (
	UnknownRole Role = iota
	User
	Admin
)

// ParseRole converts "USER" or "ADMIN" (any case) to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "USER":
		return User, nil
	case "ADMIN":
		return Admin, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a role", s))
	}
}

func (r Role) String() string {
	switch r {
	case User:
		return "USER"
	case Admin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// Actor is the authenticated principal performing an action.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor builds an actor from a resolved identity.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if role != User && role != Admin {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", role))
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == Admin
}

// Validate fails for the zero Actor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
