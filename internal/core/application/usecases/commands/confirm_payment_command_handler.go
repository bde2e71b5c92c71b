package commands

import (
	"context"

	"restaurant/internal/core/domain/model/access"
)

// ConfirmPaymentCommandHandler handles customer payment re-submissions.
//
// While the order is still Pending the re-submit is an accepted no-op, so a
// flaky client retrying the confirmation screen does not error out. Once a
// cashier has confirmed the order the re-submit fails with
// order.ErrAlreadyProcessed.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment re-submissions.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, checks ownership, and applies the idempotent
// re-affirmation. Nothing is written; the order stays exactly as it was.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(cmd.Principal().UserID()) {
		return access.ErrForbidden
	}

	if err = o.ReaffirmPayment(); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
