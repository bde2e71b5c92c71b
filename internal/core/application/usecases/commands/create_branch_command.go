package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

// CreateBranchCommand represents headquarters opening a new branch.
// Role authorization happens at the transport layer; the command itself
// carries only the branch details.
type CreateBranchCommand struct { //nolint:recvcheck //using for validation
	branchID kernel.UUID
	name     string
	address  string
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateBranchCommand creates a command to open a branch.
func NewCreateBranchCommand(branchID kernel.UUID, name, address, phone string) (CreateBranchCommand, error) {
	cmd := CreateBranchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setPhone(phone),
	); err != nil {
		return CreateBranchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

// BranchID returns the new branch's identifier.
func (c CreateBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Name returns the branch display name.
func (c CreateBranchCommand) Name() string {
	return c.name
}

// Address returns the street address.
func (c CreateBranchCommand) Address() string {
	return c.address
}

// Phone returns the contact phone number.
func (c CreateBranchCommand) Phone() string {
	return c.phone
}

func (c *CreateBranchCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CreateBranchCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateBranchCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateBranchCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
