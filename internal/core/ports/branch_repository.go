package ports

import (
	"context"

	"restaurant/internal/core/domain/model/branch"
	"restaurant/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branches.
type BranchRepository interface {
	// Add persists a new branch to storage.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Update persists changes to an existing branch. Assigning a manager who
	// already manages another branch violates a unique index and returns an
	// error wrapping branch.ErrManagerAlreadyAssigned.
	Update(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such branch exists.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
}
