// Package bootstrap wires configuration to concrete adapters for the
// binaries under cmd/.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shipping-tools/internal/adapters/cache"
	"shipping-tools/internal/adapters/repositories"
	"shipping-tools/internal/adapters/sources"
	"shipping-tools/internal/branchdata"
	"shipping-tools/internal/config"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/platform/db"
	"shipping-tools/internal/ports"
	"shipping-tools/internal/services"

	"go.uber.org/zap"
)

// Store is an open branch database, Postgres or SQLite.
type Store struct {
	DB       *sql.DB
	Postgres bool
}

// OpenStore connects to Postgres when DatabaseURL is set, otherwise to
// the SQLite file at DBPath (its directory is created if needed).
func OpenStore(cfg *config.Config) (*Store, error) {
	if cfg.UsePostgres() {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Store{DB: conn, Postgres: true}, nil
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("open store: create %q: %w", dir, err)
		}
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &Store{DB: conn}, nil
}

func (s *Store) Close() error { return s.DB.Close() }

// InitSchema creates the branch and resolution cache tables.
func (s *Store) InitSchema(ctx context.Context) error {
	if s.Postgres {
		return repositories.InitPostgresSchema(ctx, s.DB)
	}
	return repositories.InitSchema(s.DB)
}

// SeedBranches replaces the stored listing.
func (s *Store) SeedBranches(ctx context.Context, branches []domain.Branch) error {
	if s.Postgres {
		return repositories.SeedPostgresBranches(ctx, s.DB, branches)
	}
	return repositories.SeedBranches(ctx, s.DB, branches)
}

func (s *Store) BranchRepository() ports.BranchRepository {
	if s.Postgres {
		return repositories.NewSQLBranchRepository(s.DB)
	}
	return repositories.NewSqliteBranchRepository(s.DB)
}

func (s *Store) ResolutionCache() ports.ResolutionCache {
	if s.Postgres {
		return cache.NewSQLResolutionCache(s.DB)
	}
	return cache.NewSqliteResolutionCache(s.DB)
}

// ReadListing reads the branch listing at path using the configured
// encoding, delimiter and sheet.
func ReadListing(cfg *config.Config, path string) ([]domain.Branch, sources.Report, error) {
	return sources.ReadFile(path, sources.Options{
		Comma:    cfg.BranchesComma(),
		Encoding: cfg.BranchesEncoding,
		Sheet:    cfg.BranchesSheet,
	})
}

// EmbeddedBranches serves the compiled-in listing.
func EmbeddedBranches() ports.BranchRepository {
	return repositories.NewStaticBranchRepository(branchdata.All())
}

// LoadDirectory builds the lookup directory from repo. An empty listing
// is an error: every lookup but the capital shortcut would miss.
func LoadDirectory(ctx context.Context, repo ports.BranchRepository, rules domain.LookupRules, log *zap.Logger) (*services.Directory, error) {
	branches, err := repo.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	if len(branches) == 0 {
		return nil, errors.New("load directory: no branches stored")
	}

	dir := services.NewDirectory(branches, rules, log)
	if log != nil {
		log.Info("branch directory loaded",
			zap.Int("records", len(branches)),
			zap.Int("indexed", dir.Len()),
		)
	}
	return dir, nil
}
