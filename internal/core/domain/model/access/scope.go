package access

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var (
	// ErrNoBranchAssigned is returned when a branch-bound staff principal has
	// no resolvable home branch. Callers must treat it as a hard failure, not
	// fall back to an unscoped query.
	ErrNoBranchAssigned = errors.New("principal has no branch assigned")

	// ErrForbidden is returned when a principal's role or branch does not
	// permit the attempted operation.
	ErrForbidden = errors.New("operation is not permitted for this principal")
)

// BranchScope is the resolved visibility of a staff principal: either every
// branch or exactly one. It is the single place branch filtering decisions
// come from; list queries apply it uniformly instead of re-deriving role
// logic per handler.
type BranchScope struct {
	all      bool
	branchID kernel.UUID
}

// ScopeAll grants visibility across every branch.
func ScopeAll() BranchScope {
	return BranchScope{all: true}
}

// ScopeBranch restricts visibility to a single branch.
func ScopeBranch(branchID kernel.UUID) BranchScope {
	return BranchScope{branchID: branchID}
}

// IsAll reports whether the scope spans every branch.
func (s BranchScope) IsAll() bool {
	return s.all
}

// BranchID returns the single visible branch. Only meaningful when IsAll()
// is false.
func (s BranchScope) BranchID() kernel.UUID {
	return s.branchID
}

// Covers reports whether an object belonging to branchID is visible under
// this scope.
func (s BranchScope) Covers(branchID kernel.UUID) bool {
	return s.all || s.branchID.IsEqual(branchID)
}

// ScopeFor resolves a principal to its branch scope:
//   - ADMIN and HEADQUARTER_MANAGER see all branches
//   - BRANCH_MANAGER, CHEF, and CASHIER see only their home branch, and get
//     ErrNoBranchAssigned when no home branch was resolved
//   - CUSTOMER has no staff scope at all; customer reads key on the customer
//     id instead, so asking for a scope is ErrForbidden
func ScopeFor(p Principal) (BranchScope, error) {
	if err := p.Validate(); err != nil {
		return BranchScope{}, err
	}

	switch {
	case p.Role().SeesAllBranches():
		return ScopeAll(), nil
	case p.Role().IsBranchBound():
		if p.HomeBranchID() == nil {
			return BranchScope{}, ErrNoBranchAssigned
		}
		return ScopeBranch(*p.HomeBranchID()), nil
	default:
		return BranchScope{}, ErrForbidden
	}
}
