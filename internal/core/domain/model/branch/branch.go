package branch

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrBranchIsNotConstructed is returned when a Branch instance was not
	// created through NewBranch or RestoreBranch.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch")

	// ErrManagerAlreadyAssigned is returned when a manager assignment would
	// give one manager two branches. Raised by the persistence layer, which
	// enforces the rule with a unique index.
	ErrManagerAlreadyAssigned = errors.New("manager is already assigned to another branch")
)

// Branch represents one restaurant location. A branch optionally has exactly
// one manager; a manager manages at most one branch, which the persistence
// layer enforces with a unique index.
type Branch struct {
	// id is the unique identifier for the branch
	id kernel.UUID

	// name is the branch display name
	name string

	// address is the street address
	address string

	// phone is the contact phone number
	phone string

	// managerID is the assigned branch manager (nil if unassigned)
	managerID *kernel.UUID

	// isConstructed ensures the branch was created via a constructor
	isConstructed bool
}

// NewBranch creates a branch without a manager assigned.
func NewBranch(id kernel.UUID, name, address, phone string) (*Branch, error) {
	b := &Branch{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setAddress(address),
		b.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBranch rehydrates a branch from persistence.
func RestoreBranch(id kernel.UUID, name, address, phone string, managerID *kernel.UUID) (*Branch, error) {
	b, err := NewBranch(id, name, address, phone)
	if err != nil {
		return nil, err
	}

	if managerID != nil {
		if err := b.AssignManager(*managerID); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Validate ensures the Branch instance was properly constructed.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}

	return nil
}

// IsEqual compares two branches by their unique identifiers.
func (b *Branch) IsEqual(other *Branch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the branch display name.
func (b *Branch) Name() string {
	return b.name
}

// Address returns the street address.
func (b *Branch) Address() string {
	return b.address
}

// Phone returns the contact phone number.
func (b *Branch) Phone() string {
	return b.phone
}

// Manager returns the assigned manager's ID, or nil if unassigned.
func (b *Branch) Manager() *kernel.UUID {
	return b.managerID
}

// AssignManager sets the branch manager, replacing any previous assignment.
// The one-branch-per-manager rule lives in the persistence layer; here only
// the ID itself is validated.
func (b *Branch) AssignManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	b.managerID = &managerID
	return nil
}

// setID validates and sets the branch's unique identifier.
func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setName validates and sets the display name.
func (b *Branch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("branch name")
	}
	b.name = name
	return nil
}

// setAddress validates and sets the street address.
func (b *Branch) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("branch address")
	}
	b.address = address
	return nil
}

// setPhone validates and sets the phone number.
func (b *Branch) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("branch phone")
	}
	b.phone = phone
	return nil
}
