package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/config"
	"github.com/jonathan/devmatch/internal/db"
	"github.com/jonathan/devmatch/internal/ingestion"
	"github.com/jonathan/devmatch/internal/logger"
)

type importOptions struct {
	profilePath string
	developer   string
	jobsPath    string
	configPath  string
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Seed the database with a developer profile or job postings",
		Long:  "Stores a developer profile (--profile with --developer) or a list of job postings (--jobs). Files may be JSON or YAML and are validated first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "Path to a developer profile")
	cmd.Flags().StringVar(&opts.developer, "developer", "", "Developer UUID the profile belongs to")
	cmd.Flags().StringVar(&opts.jobsPath, "jobs", "", "Path to a job posting list")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	cmd.MarkFlagsOneRequired("profile", "jobs")
	cmd.MarkFlagsMutuallyExclusive("profile", "jobs")
	cmd.MarkFlagsRequiredTogether("profile", "developer")
	return cmd
}

func runImport(cmd *cobra.Command, opts *importOptions) error {
	var developerID uuid.UUID
	if opts.profilePath != "" {
		id, err := uuid.Parse(opts.developer)
		if err != nil {
			return fmt.Errorf("invalid --developer: %w", err)
		}
		developerID = id
	}

	ctx := cmd.Context()
	database, log, cleanup, err := openDatabase(ctx, opts.configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.profilePath != "" {
		return importProfile(ctx, cmd, database, log, opts.profilePath, developerID)
	}
	return importJobs(ctx, cmd, database, log, opts.jobsPath)
}

func importProfile(ctx context.Context, cmd *cobra.Command, database *db.DB, log *zap.Logger, path string, developerID uuid.UUID) error {
	_, doc, err := ingestion.LoadProfile(path)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if _, err := database.UpsertDeveloperProfile(ctx, developerID, doc.JSON); err != nil {
		return err
	}

	log.Info("imported developer profile",
		zap.String(logger.FieldDeveloperID, developerID.String()),
		zap.String("hash", doc.Metadata.Hash),
	)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported profile for developer %s\n", developerID)
	return nil
}

func importJobs(ctx context.Context, cmd *cobra.Command, database *db.DB, log *zap.Logger, path string) error {
	_, raws, err := ingestion.LoadJobs(path)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	for i, raw := range raws {
		job, err := database.UpsertJobPosting(ctx, raw)
		if err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
		log.Info("imported job posting",
			zap.String(logger.FieldJobID, job.ID.String()),
			zap.String("title", logger.Truncate(job.JobTitle, 80)),
		)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d job postings\n", len(raws))
	return nil
}

// openDatabase loads configuration, connects to the store and applies the schema.
// cleanup closes the connection and flushes the logger.
func openDatabase(ctx context.Context, configPath string) (*db.DB, *zap.Logger, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	cleanup := func() {
		database.Close()
		_ = log.Sync()
	}

	if err := database.EnsureSchema(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return database, log, cleanup, nil
}
