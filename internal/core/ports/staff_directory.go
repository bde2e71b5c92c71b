package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// StaffDirectory resolves where a staff member works. Authentication tokens
// carry identity and role but not branch assignment; the directory is the
// source of truth for the home branch of branch-bound staff.
type StaffDirectory interface {
	// HomeBranch returns the branch the user works at, or nil if the user has
	// no branch assignment.
	HomeBranch(ctx context.Context, userID kernel.UUID) (*kernel.UUID, error)
}
