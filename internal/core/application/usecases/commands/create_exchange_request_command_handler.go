package commands

import (
	"context"
	"log/slog"

	"careshare/internal/core/domain/model/exchangerequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/core/ports"
)

// CreateExchangeRequestCommandHandler records an exchange offer and notifies
// both the requester and the product owner.
type CreateExchangeRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	retry      ConflictRetry
	validator  services.TransitionValidator
	logger     *slog.Logger
}

func NewCreateExchangeRequestCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	retry ConflictRetry,
	logger *slog.Logger,
) CreateExchangeRequestCommandHandler {
	return CreateExchangeRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		retry:      retry,
		validator:  services.NewTransitionValidator(),
		logger:     logger.With("component", "create_exchange_request_handler"),
	}
}

func (h CreateExchangeRequestCommandHandler) Handle(ctx context.Context, cmd CreateExchangeRequestCommand) error {
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

func (h CreateExchangeRequestCommandHandler) create(ctx context.Context, cmd CreateExchangeRequestCommand) (workflow.Event, error) {
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
	if err = h.validator.ValidateNewExchangeRequest(target, cmd.Requester()); err != nil {
		return workflow.Event{}, err
	}

	r, err := exchangerequest.NewExchangeRequest(cmd.RequestID(), target.ID(), cmd.Requester().ID(), cmd.Offer())
	if err != nil {
		return workflow.Event{}, err
	}
	if err = uow.ExchangeRequestRepository().Add(ctx, r); err != nil {
		return workflow.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return workflow.Event{}, err
	}

	return workflow.NewEvent(workflow.Transition{
		Kind:     workflow.ExchangeRequest,
		EntityID: r.ID(),
		From:     workflow.Created,
		To:       r.Status().String(),
	}, cmd.Requester().ID(), r.RequesterID(), target.OwnerID()), nil
}
