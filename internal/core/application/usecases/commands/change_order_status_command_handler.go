package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order lifecycle moves.
// The order row is locked for the duration of the transaction, so two racing
// status changes serialize and the loser is judged against the winner's
// committed status.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
// Returns ObjectNotFoundError if the order does not exist and
// InvalidTransitionError if the transition table forbids the move. After a
// successful commit the status notification is published best-effort.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	trackedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.StatusChanged(ctx, trackedOrder.ID(), trackedOrder.Status())

	return nil
}
