package commands

import (
	"context"
)

// AssignBranchManagerCommandHandler handles manager assignments.
//
// A manager runs at most one branch. The rule is enforced by a unique index
// on the branches table; a violating assignment surfaces as an error wrapping
// branch.ErrManagerAlreadyAssigned from the repository.
type AssignBranchManagerCommandHandler struct {
	uowFactory BranchUoWFactory
}

// NewAssignBranchManagerCommandHandler creates a handler for manager assignments.
func NewAssignBranchManagerCommandHandler(uowFactory BranchUoWFactory) AssignBranchManagerCommandHandler {
	return AssignBranchManagerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the manager to the branch, replacing a previous manager.
func (h *AssignBranchManagerCommandHandler) Handle(ctx context.Context, cmd AssignBranchManagerCommand) error {
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

	branchRepo := uow.BranchRepository()
	b, err := branchRepo.Get(ctx, cmd.BranchID())
	if err != nil {
		return err
	}

	if err = b.AssignManager(cmd.ManagerID()); err != nil {
		return err
	}

	if err = branchRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
