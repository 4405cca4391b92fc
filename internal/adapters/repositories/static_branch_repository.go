package repositories

import (
	"context"

	"shipping-tools/internal/domain"
)

// In-memory BranchRepository over a fixed listing, such as the generated
// branchdata table.
type StaticBranchRepository struct {
	branches []domain.Branch
}

func NewStaticBranchRepository(branches []domain.Branch) *StaticBranchRepository {
	return &StaticBranchRepository{branches: branches}
}

func (s *StaticBranchRepository) ListBranches(context.Context) ([]domain.Branch, error) {
	out := make([]domain.Branch, len(s.branches))
	copy(out, s.branches)
	return out, nil
}
