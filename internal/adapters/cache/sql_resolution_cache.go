package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipping-tools/internal/domain"
)

// SQLResolutionCache is a Postgres-backed cache of branch lookups.
type SQLResolutionCache struct {
	DB *sql.DB
}

func NewSQLResolutionCache(db *sql.DB) *SQLResolutionCache {
	return &SQLResolutionCache{DB: db}
}

// Fetch cached matches for the given query keys.
func (s *SQLResolutionCache) GetMany(ctx context.Context, keys []string) (map[string]domain.BranchMatch, error) {
	if s.DB == nil {
		return nil, errors.New("resolution cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.BranchMatch{}, nil
	}

	q := `
	SELECT query_key, code, stage
	FROM resolution_cache
	WHERE query_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get resolution cache: query resolution_cache table: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows, len(uniq))
}

// Store query key -> match mappings in the cache.
func (s *SQLResolutionCache) PutMany(ctx context.Context, results map[string]domain.BranchMatch) error {
	return putMatches(ctx, s.DB, results, `
	INSERT INTO resolution_cache (query_key, code, stage)
	VALUES ($1, $2, $3)
	ON CONFLICT (query_key) DO UPDATE
	SET code = EXCLUDED.code,
		stage = EXCLUDED.stage;
	`)
}
