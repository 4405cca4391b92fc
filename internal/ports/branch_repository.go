package ports

import (
	"context"

	"shipping-tools/internal/domain"
)

// Port: a boundary for retrieving the branch listing from a data source.
type BranchRepository interface {
	// Retrieve all branches in load order.
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}
