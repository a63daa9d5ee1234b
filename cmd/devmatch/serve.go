package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/config"
	"github.com/jonathan/devmatch/internal/db"
	"github.com/jonathan/devmatch/internal/logger"
	"github.com/jonathan/devmatch/internal/server"
)

var _ server.Store = (*db.DB)(nil)

type serveOptions struct {
	port       int
	configPath string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start an HTTP server that returns each developer's eligible jobs ordered by match score.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 0, "Port to listen on (overrides config and PORT)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.port != 0 {
		cfg.Port = opts.port
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		RankWorkers:    cfg.RankWorkers,
		ExplainScores:  cfg.ExplainScores,
	}, database, server.NewJWTService(jwtConfig), log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("devmatch ready", zap.Int("port", cfg.Port), zap.Int("rank_workers", cfg.RankWorkers))
	return srv.Start(ctx)
}
