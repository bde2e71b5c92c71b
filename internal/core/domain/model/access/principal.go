package access

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated caller as supplied by the auth collaborator:
// identity, display name, role, and (for branch-bound staff) the home branch
// resolved at authentication time. The core trusts this input and does not
// verify identity itself.
//
// A branch-bound principal may legitimately carry no home branch (staff not
// yet assigned anywhere); the gap surfaces as ErrNoBranchAssigned the moment
// a scope is derived, never as an unscoped result set.
type Principal struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	name         string
	role         Role
	homeBranchID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrincipal creates a validated Principal.
// homeBranchID is nil for roles without a branch and for unassigned staff.
func NewPrincipal(userID kernel.UUID, name string, role Role, homeBranchID *kernel.UUID) (Principal, error) {
	p := Principal{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setUserID(userID),
		p.setRole(role),
		p.setHomeBranch(homeBranchID),
	); err != nil {
		return Principal{}, err
	}

	p.name = name
	return p, nil
}

// Validate ensures the Principal was created through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// UserID returns the principal's user identifier.
func (p Principal) UserID() kernel.UUID {
	return p.userID
}

// Name returns the display name from the auth token, used as the customer
// name on self-service orders.
func (p Principal) Name() string {
	return p.name
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// HomeBranchID returns the resolved home branch, or nil when the role carries
// none or resolution found nothing.
func (p Principal) HomeBranchID() *kernel.UUID {
	return p.homeBranchID
}

func (p *Principal) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.userID = id
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Principal) setHomeBranch(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.homeBranchID = id
	return nil
}
