package main

import (
	"context"

	"shipping-tools/internal/bootstrap"
	"shipping-tools/internal/config"
	"shipping-tools/internal/platform/logger"
	"shipping-tools/internal/ports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root pre-run has
// loaded it.
type app struct {
	cfg   *config.Config
	rules config.Rules
	log   *zap.Logger

	rulesPath string
	logLevel  string
	envFile   string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "shiptools",
		Short:         "Branch directory and sales export tools",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "YAML rule tables (default $SHIPTOOLS_RULES_PATH)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default $SHIPTOOLS_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load")

	root.AddCommand(
		newBranchesCmd(a),
		newShipmentsCmd(a),
		newOrdersCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.rulesPath != "" {
		cfg.RulesPath = a.rulesPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg, a.rules, a.log = cfg, rules, log
	return nil
}

// branchRepository opens the configured branch store. The returned func
// releases it.
func (a *app) branchRepository(ctx context.Context) (ports.BranchRepository, *bootstrap.Store, func(), error) {
	if a.cfg.BranchStore == config.BranchStoreEmbedded {
		return bootstrap.EmbeddedBranches(), nil, func() {}, nil
	}

	store, err := bootstrap.OpenStore(a.cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := store.InitSchema(ctx); err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return store.BranchRepository(), store, func() { store.Close() }, nil
}
