package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shipping-tools/internal/domain"
)

// SQLite backed cache of branch lookups keyed by normalized query.
// Keys are expected to be consistent (already normalized) by the caller.
type SqliteResolutionCache struct {
	DB *sql.DB
}

func NewSqliteResolutionCache(db *sql.DB) *SqliteResolutionCache {
	return &SqliteResolutionCache{DB: db}
}

// Fetch cached matches for the given query keys.
func (s *SqliteResolutionCache) GetMany(ctx context.Context, keys []string) (map[string]domain.BranchMatch, error) {
	if s.DB == nil {
		return nil, errors.New("resolution cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.BranchMatch{}, nil
	}

	ph := make([]string, len(uniq))
	args := make([]any, len(uniq))
	for i, k := range uniq {
		ph[i] = "?"
		args[i] = k
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		query_key,
		code,
		stage
	FROM resolution_cache
	WHERE query_key IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get resolution cache: query resolution_cache table: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows, len(uniq))
}

// Store query key -> match mappings in the cache.
func (s *SqliteResolutionCache) PutMany(ctx context.Context, results map[string]domain.BranchMatch) error {
	return putMatches(ctx, s.DB, results, `
	INSERT OR REPLACE INTO resolution_cache (
		query_key,
		code,
		stage
	)
	VALUES (?, ?, ?);
	`)
}

func uniqueKeys(keys []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}

func scanMatches(rows *sql.Rows, size int) (map[string]domain.BranchMatch, error) {
	out := make(map[string]domain.BranchMatch, size)
	for rows.Next() {
		var key, code, stage string
		if err := rows.Scan(&key, &code, &stage); err != nil {
			return nil, fmt.Errorf("get resolution cache: scan rows: %w", err)
		}
		out[key] = domain.BranchMatch{Code: code, Stage: domain.MatchStage(stage)}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get resolution cache: row iteration: %w", err)
	}
	return out, nil
}

func putMatches(ctx context.Context, db *sql.DB, results map[string]domain.BranchMatch, upsert string) error {
	if db == nil {
		return errors.New("resolution cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert resolution cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsert)
	if err != nil {
		return fmt.Errorf("insert resolution cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, m := range results {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("insert resolution cache: empty query key")
		}

		if _, err := stmt.ExecContext(ctx, key, m.Code, string(m.Stage)); err != nil {
			return fmt.Errorf("insert resolution cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert resolution cache commit: %w", err)
	}

	return nil
}
