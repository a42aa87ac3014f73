package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// DefaultPublishTimeout bounds the post-commit publish when the handler is
// built with a non-positive timeout.
const DefaultPublishTimeout = 2 * time.Second

const (
	resultAccepted = "accepted"
	resultDenied   = "denied"
	resultNotFound = "not_found"
	resultError    = "error"
)

// transitionRunner is the read-submit-write sequence shared by the create and
// advance handlers. One call is one transaction:
//
//	Begin -> [GetForUpdate] -> Machine.Submit (interceptor writes) -> Commit
//
// The row lock taken by GetForUpdate serializes concurrent requests on the
// same order. A denied event commits nothing.
//
// The publish that follows an accepted commit is detached from the request's
// cancellation and bounded by publishTimeout.
type transitionRunner struct {
	uowFactory     OrderUoWFactory
	machine        *services.Machine
	publisher      ports.OrderEventPublisher
	metrics        ports.TransitionMetrics
	logger         *slog.Logger
	now            func() time.Time
	publishTimeout time.Duration
}

func newTransitionRunner(
	uowFactory OrderUoWFactory,
	machine *services.Machine,
	publisher ports.OrderEventPublisher,
	metrics ports.TransitionMetrics,
	publishTimeout time.Duration,
	logger *slog.Logger,
) transitionRunner {
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}

	return transitionRunner{
		uowFactory:     uowFactory,
		machine:        machine,
		publisher:      publisher,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
		publishTimeout: publishTimeout,
	}
}

func (r transitionRunner) run(
	ctx context.Context,
	orderID kernel.OrderID,
	event order.Event,
) (services.TransitionResult, error) {
	result, err := r.submit(ctx, orderID, event)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		r.metrics.ObserveTransition(event, resultNotFound)
	case err != nil:
		r.metrics.ObserveTransition(event, resultError)
	case result.IsAccepted():
		r.metrics.ObserveTransition(event, resultAccepted)
		r.publish(ctx, result)
	default:
		r.metrics.ObserveTransition(event, resultDenied)
	}

	return result, err
}

func (r transitionRunner) submit(
	ctx context.Context,
	orderID kernel.OrderID,
	event order.Event,
) (services.TransitionResult, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	interceptor := NewOrderStateInterceptor(repo)

	session := services.NewSession(interceptor)
	if orderID.IsAssigned() {
		existing, err := repo.GetForUpdate(ctx, orderID)
		if err != nil {
			return services.TransitionResult{}, err
		}

		if session, err = services.RestoreSession(existing, interceptor); err != nil {
			return services.TransitionResult{}, err
		}
	}

	result, err := r.machine.Submit(ctx, session, event)
	if err != nil {
		return services.TransitionResult{}, err
	}

	if !result.IsAccepted() {
		return result, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, fmt.Errorf("commit transaction: %w", err)
	}

	return result, nil
}

func (r transitionRunner) publish(ctx context.Context, result services.TransitionResult) {
	event := ports.OrderStateChangedEvent{
		ID:         kernel.NewUUID(),
		OrderID:    result.OrderID,
		Event:      result.Event,
		From:       result.From,
		To:         result.State,
		OccurredAt: r.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.publishTimeout)
	defer cancel()

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "Failed to publish order state change",
			"order_id", result.OrderID.String(),
			"event", result.Event.String(),
			"error", err,
		)
	}
}
