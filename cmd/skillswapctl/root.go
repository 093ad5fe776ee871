package main

import (
	"context"
	"fmt"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "skillswapctl"

// Actual version can be specified in build command.
var version = "unknown"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "skillswapctl runs maintenance tasks against the skill-swap database",
		SilenceUsage:  true,
	}
	root.PersistentFlags().Duration("timeout", 30*time.Second, "overall deadline for the command")

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newMatchesCmd(),
		newVersionCmd(),
	)
	return root
}

// env is what every database-backed command needs.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	db     database.DB
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	_ = e.logger.Sync()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	l, err := logger.New(app, cfg.App.Environment)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		_ = l.Sync()
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return &env{cfg: cfg, logger: l, db: db}, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
