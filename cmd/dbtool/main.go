package main

import (
	"context"
	"flag"
	"log"

	"shipping-tools/internal/bootstrap"
	"shipping-tools/internal/config"
	"shipping-tools/internal/platform/logger"

	"go.uber.org/zap"
)

// dbtool creates the schema and loads the branch listing into Postgres
// (DATABASE_URL) or SQLite (SHIPTOOLS_DB_PATH).
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	source := flag.String("source", cfg.BranchesSource, "branch listing file (.csv or .xlsx)")
	flag.Parse()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		zlog.Fatal("open store failed", zap.Error(err))
	}
	defer store.Close()

	if err := initAndSeed(context.Background(), store, cfg, *source, zlog); err != nil {
		zlog.Fatal("dbtool failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, store *bootstrap.Store, cfg *config.Config, source string, zlog *zap.Logger) error {
	zlog.Info("initializing database schema", zap.Bool("postgres", store.Postgres))
	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	zlog.Info("schema ready")

	branches, rep, err := bootstrap.ReadListing(cfg, source)
	if err != nil {
		return err
	}

	zlog.Info("seeding branches", zap.String("source", source), zap.Int("rows", rep.Rows), zap.Int("skipped", rep.Skipped))
	if err := store.SeedBranches(ctx, branches); err != nil {
		return err
	}
	zlog.Info("seeding complete", zap.Int("branches", len(branches)))

	return nil
}
