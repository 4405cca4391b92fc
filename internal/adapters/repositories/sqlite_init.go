package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shipping-tools/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createBranchesQuery := `
	CREATE TABLE IF NOT EXISTS branches (
		position INTEGER PRIMARY KEY,
		code TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		locality TEXT NOT NULL,
		province TEXT NOT NULL
	);
	`

	createResolutionCacheQuery := `
	CREATE TABLE IF NOT EXISTS resolution_cache (
		query_key TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		stage TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_branches_code
	ON branches(code);
	`

	statements := []string{
		createBranchesQuery,
		createResolutionCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored branch listing, keeping load order in position.
// Cached lookups are dropped in the same transaction.
func SeedBranches(ctx context.Context, db *sql.DB, branches []domain.Branch) error {
	return seedBranches(ctx, db, branches,
		[]string{`DELETE FROM branches;`, `DELETE FROM resolution_cache;`},
		`
	INSERT INTO branches (
		position,
		code,
		street,
		number,
		locality,
		province
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
}

func seedBranches(ctx context.Context, db *sql.DB, branches []domain.Branch, clearQueries []string, insertQuery string) error {
	if db == nil {
		return errors.New("seed branches: DB is nil")
	}

	for i, b := range branches {
		if strings.TrimSpace(b.Code) == "" {
			return fmt.Errorf("seed branches: item at index %d: code cannot be empty", i+1)
		}
		if strings.TrimSpace(b.Locality) == "" || strings.TrimSpace(b.Province) == "" {
			return fmt.Errorf("seed branches: item %q: locality and province cannot be empty", b.Code)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed branches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range clearQueries {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed branches: clear tables: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("seed branches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range branches {
		if _, err := stmt.ExecContext(ctx, i+1, b.Code, b.Street, b.Number, b.Locality, b.Province); err != nil {
			return fmt.Errorf("seed branches: insert code=%s: %w", b.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed branches: commit tx: %w", err)
	}

	return nil
}
