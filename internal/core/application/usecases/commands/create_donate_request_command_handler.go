package commands

import (
	"context"
	"log/slog"

	"careshare/internal/core/domain/model/donaterequest"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/core/ports"
)

// CreateDonateRequestCommandHandler records a claim on a donate item.
//
// The item row is locked before the duplicate check, so two concurrent claims
// by the same requester cannot both pass it: the second one either waits and
// then sees the first, or is restarted after a store conflict.
type CreateDonateRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	retry      ConflictRetry
	validator  services.TransitionValidator
	logger     *slog.Logger
}

func NewCreateDonateRequestCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	retry ConflictRetry,
	logger *slog.Logger,
) CreateDonateRequestCommandHandler {
	return CreateDonateRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		retry:      retry,
		validator:  services.NewTransitionValidator(),
		logger:     logger.With("component", "create_donate_request_handler"),
	}
}

func (h CreateDonateRequestCommandHandler) Handle(ctx context.Context, cmd CreateDonateRequestCommand) error {
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

func (h CreateDonateRequestCommandHandler) create(ctx context.Context, cmd CreateDonateRequestCommand) (workflow.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return workflow.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := uow.DonateItemRepository()
	requests := uow.DonateRequestRepository()

	item, err := items.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return workflow.Event{}, err
	}

	active, err := requests.HasActiveRequest(ctx, item.ID(), cmd.Requester().ID())
	if err != nil {
		return workflow.Event{}, err
	}
	if err = h.validator.ValidateNewDonateRequest(item, cmd.Requester(), active); err != nil {
		return workflow.Event{}, err
	}

	r, err := donaterequest.NewDonateRequest(cmd.RequestID(), item.ID(), cmd.Requester().ID(), cmd.Description())
	if err != nil {
		return workflow.Event{}, err
	}
	if err = requests.Add(ctx, r); err != nil {
		return workflow.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return workflow.Event{}, err
	}

	return workflow.NewEvent(workflow.Transition{
		Kind:     workflow.DonateRequest,
		EntityID: r.ID(),
		From:     workflow.Created,
		To:       r.Status().String(),
	}, cmd.Requester().ID(), item.DonorID(), r.RequesterID()), nil
}
