package ports

import (
	"context"

	"shipping-tools/internal/domain"
)

// Contract for persisting branch lookups keyed by normalized query.
type ResolutionCache interface {
	// Return cached matches for the keys that have one.
	GetMany(ctx context.Context, keys []string) (map[string]domain.BranchMatch, error)
	// Store matches by key, replacing existing entries.
	PutMany(ctx context.Context, results map[string]domain.BranchMatch) error
}
