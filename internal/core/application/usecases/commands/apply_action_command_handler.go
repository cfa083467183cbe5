package commands

import (
	"context"
	"fmt"
	"log/slog"

	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"
	"careshare/internal/core/domain/services"
	"careshare/internal/core/ports"
	"careshare/internal/pkg/errs"
)

// ApplyActionResult describes what a committed action changed. The primary
// transition comes first, followed by the cascades it caused.
type ApplyActionResult struct {
	Transitions []workflow.Transition
	Events      []workflow.Event
}

// Primary returns the transition of the entity the action was addressed to.
func (r ApplyActionResult) Primary() workflow.Transition {
	if len(r.Transitions) == 0 {
		return workflow.Transition{}
	}
	return r.Transitions[0]
}

func (r *ApplyActionResult) record(actorID kernel.UUID, transition workflow.Transition, recipients ...kernel.UUID) {
	r.Transitions = append(r.Transitions, transition)
	r.Events = append(r.Events, workflow.NewEvent(transition, actorID, recipients...))
}

// ApplyActionCommandHandler is the workflow coordinator. For each attempt it
// opens a unit of work, locks the addressed entity and then its linked entity,
// validates the action, applies it together with any cascade, and commits.
// Events are handed to the notifier only after a successful commit.
//
// A StoreConflictError reported by the store restarts the whole attempt with
// backoff; every other error is returned unchanged and leaves no trace in the
// store.
//
// Example:
//
//	handler := NewApplyActionCommandHandler(uowFactory, notifier, NewConflictRetry(3), logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // 403
//	case errors.Is(err, errs.ErrTargetUnavailable):
//	    // the linked item was claimed or sold meanwhile
//	case err == nil:
//	    fmt.Println(result.Primary().To)
//	}
type ApplyActionCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	retry      ConflictRetry
	validator  services.TransitionValidator
	resolver   services.CascadeResolver
	logger     *slog.Logger
}

func NewApplyActionCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	retry ConflictRetry,
	logger *slog.Logger,
) ApplyActionCommandHandler {
	return ApplyActionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		retry:      retry,
		validator:  services.NewTransitionValidator(),
		resolver:   services.NewCascadeResolver(),
		logger:     logger.With("component", "apply_action_handler"),
	}
}

func (h ApplyActionCommandHandler) Handle(ctx context.Context, cmd ApplyActionCommand) (ApplyActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyActionResult{}, err
	}

	result, err := runWithConflictRetry(ctx, h.retry, func() (ApplyActionResult, error) {
		return h.apply(ctx, cmd)
	})
	if err != nil {
		return ApplyActionResult{}, err
	}

	for _, transition := range result.Transitions {
		if transition.Override {
			h.logger.WarnContext(ctx, "Administrative override applied",
				"kind", transition.Kind.String(),
				"entity_id", transition.EntityID.String(),
				"from", transition.From,
				"to", transition.To,
				"actor_id", cmd.Actor().ID().String(),
			)
		}
	}

	publishEvents(ctx, h.notifier, h.logger, result.Events)
	return result, nil
}

func (h ApplyActionCommandHandler) apply(ctx context.Context, cmd ApplyActionCommand) (ApplyActionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyActionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		result ApplyActionResult
		err    error
	)
	switch cmd.Kind() {
	case workflow.Product:
		result, err = h.applyToProduct(ctx, uow, cmd)
	case workflow.DonateItem:
		result, err = h.applyToDonateItem(ctx, uow, cmd)
	case workflow.DonateRequest:
		result, err = h.applyToDonateRequest(ctx, uow, cmd)
	case workflow.ExchangeRequest:
		result, err = h.applyToExchangeRequest(ctx, uow, cmd)
	case workflow.PurchaseRequest:
		result, err = h.applyToPurchaseRequest(ctx, uow, cmd)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%s has no workflow", cmd.Kind()))
	}
	if err != nil {
		return ApplyActionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyActionResult{}, err
	}

	return result, nil
}

func publishEvents(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, events []workflow.Event) {
	for _, event := range events {
		if err := notifier.Notify(ctx, event); err != nil {
			logger.WarnContext(ctx, "Workflow event was not accepted by the notifier",
				"kind", event.Transition.Kind.String(),
				"entity_id", event.Transition.EntityID.String(),
				"status", event.Transition.To,
				"error", err,
			)
		}
	}
}
