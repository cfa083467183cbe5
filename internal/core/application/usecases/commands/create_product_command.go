package commands

import (
	"errors"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/product"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand lists a new product on behalf of its owner. The listing
// starts Pending and waits for administrator review.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	owner     workflow.Actor
	details   product.Details
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	owner workflow.Actor,
	details product.Details,
	price decimal.Decimal,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setOwner(owner),
		cmd.setDetails(details),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Owner() workflow.Actor {
	return c.owner
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setOwner(owner workflow.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	c.owner = owner
	return nil
}

func (c *CreateProductCommand) setDetails(details product.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
