package commands

import (
	"errors"
	"strings"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrApplyActionCommandIsNotConstructed = errors.New(
	"ApplyActionCommand must be created via NewApplyActionCommand constructor",
)

// ApplyActionCommand asks the workflow coordinator to perform one action on one
// entity on behalf of an actor.
//
// Example:
//
//	cmd, err := NewApplyActionCommand(workflow.PurchaseRequest, purchaseID, actor, workflow.Ship, "")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ApplyActionCommand struct { //nolint:recvcheck //using for validation
	kind     workflow.Kind
	entityID kernel.UUID
	actor    workflow.Actor
	action   workflow.Action
	reason   string

	guard guard.ConstructorGuard
}

// NewApplyActionCommand validates the request envelope. reason is only kept by
// reject actions and may be empty.
func NewApplyActionCommand(
	kind workflow.Kind,
	entityID kernel.UUID,
	actor workflow.Actor,
	action workflow.Action,
	reason string,
) (ApplyActionCommand, error) {
	cmd := ApplyActionCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setEntityID(entityID),
		cmd.setActor(actor),
		cmd.setAction(action),
	); err != nil {
		return ApplyActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyActionCommandIsNotConstructed)
}

func (c ApplyActionCommand) Kind() workflow.Kind {
	return c.kind
}

func (c ApplyActionCommand) EntityID() kernel.UUID {
	return c.entityID
}

func (c ApplyActionCommand) Actor() workflow.Actor {
	return c.actor
}

func (c ApplyActionCommand) Action() workflow.Action {
	return c.action
}

func (c ApplyActionCommand) Reason() string {
	return c.reason
}

func (c *ApplyActionCommand) setKind(kind workflow.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *ApplyActionCommand) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	c.entityID = entityID
	return nil
}

func (c *ApplyActionCommand) setActor(actor workflow.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ApplyActionCommand) setAction(action workflow.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}
