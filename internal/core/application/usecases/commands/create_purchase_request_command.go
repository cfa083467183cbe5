package commands

import (
	"errors"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrCreatePurchaseRequestCommandIsNotConstructed = errors.New(
	"CreatePurchaseRequestCommand must be created via NewCreatePurchaseRequestCommand constructor",
)

// CreatePurchaseRequestCommand orders an approved product. The amount is not
// part of the command: it is taken from the product price when the purchase is
// created.
type CreatePurchaseRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	productID kernel.UUID
	buyer     workflow.Actor
	contact   purchaserequest.Contact

	guard guard.ConstructorGuard
}

func NewCreatePurchaseRequestCommand(
	requestID kernel.UUID,
	productID kernel.UUID,
	buyer workflow.Actor,
	contact purchaserequest.Contact,
) (CreatePurchaseRequestCommand, error) {
	cmd := CreatePurchaseRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		productID.Validate(),
		buyer.Validate(),
		contact.Validate(),
	); err != nil {
		return CreatePurchaseRequestCommand{}, err
	}
	cmd.requestID = requestID
	cmd.productID = productID
	cmd.buyer = buyer
	cmd.contact = contact

	return cmd, nil
}

func (c CreatePurchaseRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseRequestCommandIsNotConstructed)
}

func (c CreatePurchaseRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreatePurchaseRequestCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreatePurchaseRequestCommand) Buyer() workflow.Actor {
	return c.buyer
}

func (c CreatePurchaseRequestCommand) Contact() purchaserequest.Contact {
	return c.contact
}
