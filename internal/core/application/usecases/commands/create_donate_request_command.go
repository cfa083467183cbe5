package commands

import (
	"errors"
	"strings"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrCreateDonateRequestCommandIsNotConstructed = errors.New(
	"CreateDonateRequestCommand must be created via NewCreateDonateRequestCommand constructor",
)

// CreateDonateRequestCommand claims an approved donate item on behalf of a requester.
type CreateDonateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	itemID      kernel.UUID
	requester   workflow.Actor
	description string

	guard guard.ConstructorGuard
}

func NewCreateDonateRequestCommand(
	requestID kernel.UUID,
	itemID kernel.UUID,
	requester workflow.Actor,
	description string,
) (CreateDonateRequestCommand, error) {
	cmd := CreateDonateRequestCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		itemID.Validate(),
		requester.Validate(),
	); err != nil {
		return CreateDonateRequestCommand{}, err
	}
	cmd.requestID = requestID
	cmd.itemID = itemID
	cmd.requester = requester

	return cmd, nil
}

func (c CreateDonateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonateRequestCommandIsNotConstructed)
}

func (c CreateDonateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateDonateRequestCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateDonateRequestCommand) Requester() workflow.Actor {
	return c.requester
}

func (c CreateDonateRequestCommand) Description() string {
	return c.description
}
