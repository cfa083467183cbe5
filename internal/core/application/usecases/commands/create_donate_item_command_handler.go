package commands

import (
	"context"

	"careshare/internal/core/domain/model/donateitem"
)

// CreateDonateItemCommandHandler persists new donate items in Pending status.
type CreateDonateItemCommandHandler struct {
	uowFactory DonateItemUoWFactory
}

func NewCreateDonateItemCommandHandler(uowFactory DonateItemUoWFactory) CreateDonateItemCommandHandler {
	return CreateDonateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDonateItemCommandHandler) Handle(ctx context.Context, cmd CreateDonateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := donateitem.NewDonateItem(cmd.ItemID(), cmd.Donor().ID(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DonateItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
