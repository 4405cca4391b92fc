package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"shipping-tools/internal/adapters/cache"
	"shipping-tools/internal/api"
	"shipping-tools/internal/bootstrap"
	"shipping-tools/internal/config"
	"shipping-tools/internal/platform/logger"
	"shipping-tools/internal/ports"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires the branch directory and the resolution cache behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx := context.Background()

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return err
	}

	repo, lookupCache, closeStore, err := openBranchStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dir, err := bootstrap.LoadDirectory(ctx, repo, rules.Lookup, zlog)
	if err != nil {
		return err
	}

	router := api.NewRouter(dir, lookupCache, rules.Filter, zlog)

	zlog.Info("server listening", zap.String("addr", ":"+cfg.Port), zap.String("branch_store", cfg.BranchStore))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// openBranchStore returns the branch source and lookup cache for the
// configured store. The embedded listing uses an in-process cache.
func openBranchStore(cfg *config.Config) (ports.BranchRepository, ports.ResolutionCache, func(), error) {
	if cfg.BranchStore == config.BranchStoreEmbedded {
		return bootstrap.EmbeddedBranches(), cache.NewMemoryResolutionCache(), func() {}, nil
	}

	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open branch store: %w", err)
	}
	if err := store.InitSchema(context.Background()); err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return store.BranchRepository(), store.ResolutionCache(), func() { store.Close() }, nil
}
