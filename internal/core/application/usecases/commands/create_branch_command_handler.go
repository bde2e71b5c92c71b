package commands

import (
	"context"

	"restaurant/internal/core/domain/model/branch"
)

// CreateBranchCommandHandler handles opening new branches.
type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

// NewCreateBranchCommandHandler creates a handler for branch creation.
func NewCreateBranchCommandHandler(uowFactory BranchUoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the branch without a manager; assignment is a separate step.
func (h *CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	b, err := branch.NewBranch(cmd.BranchID(), cmd.Name(), cmd.Address(), cmd.Phone())
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

	if err = uow.BranchRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
