package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shipping-tools/internal/domain"
)

// Postgres-backed implementation of the BranchRepository port.
type SQLBranchRepository struct{ DB *sql.DB }

func NewSQLBranchRepository(db *sql.DB) *SQLBranchRepository {
	return &SQLBranchRepository{DB: db}
}

// Initialize the Postgres schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS branches (
		position INTEGER PRIMARY KEY,
		code TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		locality TEXT NOT NULL,
		province TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS resolution_cache (
		query_key TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		stage TEXT NOT NULL
	);
	`,
		`CREATE INDEX IF NOT EXISTS idx_branches_code ON branches(code);`,
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
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
func SeedPostgresBranches(ctx context.Context, db *sql.DB, branches []domain.Branch) error {
	return seedBranches(ctx, db, branches,
		[]string{`TRUNCATE branches, resolution_cache;`},
		`
	INSERT INTO branches (position, code, street, number, locality, province)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
}

// Return all branches stored in the database, in load order.
func (s *SQLBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	if s.DB == nil {
		return nil, errors.New("sql branch repository: DB is nil")
	}
	return listBranches(ctx, s.DB)
}
