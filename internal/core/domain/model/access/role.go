package access

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role identifies what a principal is allowed to do. Roles arrive as strings
// in the auth token, so the type is string-backed; RoleFromString is the only
// sanctioned way to turn external input into a Role.
type Role string

const (
	// RoleAdmin has unrestricted access across all branches.
	RoleAdmin Role = "ADMIN"

	// RoleHeadquarterManager oversees all branches, like RoleAdmin but
	// without user administration rights (which live outside this service).
	RoleHeadquarterManager Role = "HEADQUARTER_MANAGER"

	// RoleBranchManager manages exactly one branch, resolved from the branch
	// record that names them as manager.
	RoleBranchManager Role = "BRANCH_MANAGER"

	// RoleChef works the kitchen of their assigned branch.
	RoleChef Role = "CHEF"

	// RoleCashier operates the till of their assigned branch.
	RoleCashier Role = "CASHIER"

	// RoleCustomer places and collects their own orders.
	RoleCustomer Role = "CUSTOMER"
)

func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:              {},
		RoleHeadquarterManager: {},
		RoleBranchManager:      {},
		RoleChef:               {},
		RoleCashier:            {},
		RoleCustomer:           {},
	}
}

// RoleFromString parses a role received from the auth collaborator.
// Returns an error for anything outside the closed role set.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role is one of the six known values.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsBranchBound reports whether the role operates within a single branch and
// therefore requires a resolved home branch.
func (r Role) IsBranchBound() bool {
	return r == RoleBranchManager || r == RoleChef || r == RoleCashier
}

// SeesAllBranches reports whether the role's reads are unscoped.
func (r Role) SeesAllBranches() bool {
	return r == RoleAdmin || r == RoleHeadquarterManager
}
