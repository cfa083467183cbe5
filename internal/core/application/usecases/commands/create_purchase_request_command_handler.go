package commands

import (
	"context"
	"log/slog"

	"careshare/internal/core/domain/model/purchaserequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/core/ports"
)

// CreatePurchaseRequestCommandHandler records a purchase with the product
// price read under lock as its amount.
type CreatePurchaseRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	retry      ConflictRetry
	validator  services.TransitionValidator
	logger     *slog.Logger
}

func NewCreatePurchaseRequestCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	retry ConflictRetry,
	logger *slog.Logger,
) CreatePurchaseRequestCommandHandler {
	return CreatePurchaseRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		retry:      retry,
		validator:  services.NewTransitionValidator(),
		logger:     logger.With("component", "create_purchase_request_handler"),
	}
}

func (h CreatePurchaseRequestCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := runWithConflictRetry(ctx, h.retry, func() (workflow.Event, error) {
		return h.create(ctx, cmd)
	})
	if err != nil {
		return err
	}

	publishEvents(ctx, h.notifier, h.logger, []workflow.Event{event})
	return nil
}

func (h CreatePurchaseRequestCommandHandler) create(ctx context.Context, cmd CreatePurchaseRequestCommand) (workflow.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return workflow.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ProductRepository().GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return workflow.Event{}, err
	}
	if err = h.validator.ValidateNewPurchaseRequest(target, cmd.Buyer()); err != nil {
		return workflow.Event{}, err
	}

	r, err := purchaserequest.NewPurchaseRequest(cmd.RequestID(), target.ID(), cmd.Buyer().ID(), cmd.Contact(), target.Price())
	if err != nil {
		return workflow.Event{}, err
	}
	if err = uow.PurchaseRequestRepository().Add(ctx, r); err != nil {
		return workflow.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return workflow.Event{}, err
	}

	return workflow.NewEvent(workflow.Transition{
		Kind:     workflow.PurchaseRequest,
		EntityID: r.ID(),
		From:     workflow.Created,
		To:       r.Status().String(),
	}, cmd.Buyer().ID(), target.OwnerID(), r.BuyerID()), nil
}
