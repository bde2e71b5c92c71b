package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAssignBranchManagerCommandIsNotConstructed = errors.New(
	"AssignBranchManagerCommand must be created via NewAssignBranchManagerCommand constructor",
)

// AssignBranchManagerCommand represents headquarters putting a manager in
// charge of a branch.
type AssignBranchManagerCommand struct { //nolint:recvcheck //using for validation
	branchID  kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignBranchManagerCommand creates a command to assign a branch manager.
func NewAssignBranchManagerCommand(branchID, managerID kernel.UUID) (AssignBranchManagerCommand, error) {
	cmd := AssignBranchManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setManagerID(managerID),
	); err != nil {
		return AssignBranchManagerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBranchManagerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBranchManagerCommandIsNotConstructed)
}

// BranchID returns the branch receiving a manager.
func (c AssignBranchManagerCommand) BranchID() kernel.UUID {
	return c.branchID
}

// ManagerID returns the manager being assigned.
func (c AssignBranchManagerCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c *AssignBranchManagerCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *AssignBranchManagerCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}
