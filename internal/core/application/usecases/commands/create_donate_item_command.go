package commands

import (
	"errors"

	"careshare/internal/core/domain/model/donateitem"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/pkg/guard"
)

var ErrCreateDonateItemCommandIsNotConstructed = errors.New(
	"CreateDonateItemCommand must be created via NewCreateDonateItemCommand constructor",
)

// CreateDonateItemCommand offers goods for free on behalf of a donor.
type CreateDonateItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	donor   workflow.Actor
	details donateitem.Details

	guard guard.ConstructorGuard
}

func NewCreateDonateItemCommand(itemID kernel.UUID, donor workflow.Actor, details donateitem.Details) (CreateDonateItemCommand, error) {
	cmd := CreateDonateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setDonor(donor),
		cmd.setDetails(details),
	); err != nil {
		return CreateDonateItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateDonateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonateItemCommandIsNotConstructed)
}

func (c CreateDonateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateDonateItemCommand) Donor() workflow.Actor {
	return c.donor
}

func (c CreateDonateItemCommand) Details() donateitem.Details {
	return c.details
}

func (c *CreateDonateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateDonateItemCommand) setDonor(donor workflow.Actor) error {
	if err := donor.Validate(); err != nil {
		return err
	}
	c.donor = donor
	return nil
}

func (c *CreateDonateItemCommand) setDetails(details donateitem.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
