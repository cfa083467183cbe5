package commands

import (
	"errors"

	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrCreateExchangeRequestCommandIsNotConstructed = errors.New(
	"CreateExchangeRequestCommand must be created via NewCreateExchangeRequestCommand constructor",
)

// CreateExchangeRequestCommand offers an item in exchange for an approved product.
type CreateExchangeRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	productID kernel.UUID
	requester workflow.Actor
	offer     exchangerequest.Offer

	guard guard.ConstructorGuard
}

func NewCreateExchangeRequestCommand(
	requestID kernel.UUID,
	productID kernel.UUID,
	requester workflow.Actor,
	offer exchangerequest.Offer,
) (CreateExchangeRequestCommand, error) {
	cmd := CreateExchangeRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		productID.Validate(),
		requester.Validate(),
		offer.Validate(),
	); err != nil {
		return CreateExchangeRequestCommand{}, err
	}
	cmd.requestID = requestID
	cmd.productID = productID
	cmd.requester = requester
	cmd.offer = offer

	return cmd, nil
}

func (c CreateExchangeRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateExchangeRequestCommandIsNotConstructed)
}

func (c CreateExchangeRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateExchangeRequestCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateExchangeRequestCommand) Requester() workflow.Actor {
	return c.requester
}

func (c CreateExchangeRequestCommand) Offer() exchangerequest.Offer {
	return c.offer
}
