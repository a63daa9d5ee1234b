package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/logger"
)

type jobStatusOptions struct {
	job        string
	accepting  bool
	configPath string
}

func newJobStatusCmd() *cobra.Command {
	opts := &jobStatusOptions{}
	cmd := &cobra.Command{
		Use:   "job-status",
		Short: "Open or close a job posting for applications",
		Long:  "Sets whether a stored job posting accepts applications. Closed postings drop out of every developer's deck.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJobStatus(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.job, "job", "", "Job posting UUID (required)")
	cmd.Flags().BoolVar(&opts.accepting, "accepting", false, "Whether the posting accepts applications (required)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	markRequired(cmd, "job", "accepting")
	return cmd
}

func runJobStatus(cmd *cobra.Command, opts *jobStatusOptions) error {
	jobID, err := uuid.Parse(opts.job)
	if err != nil {
		return fmt.Errorf("invalid --job: %w", err)
	}

	ctx := cmd.Context()
	database, log, cleanup, err := openDatabase(ctx, opts.configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.SetAcceptingApplications(ctx, jobID, opts.accepting); err != nil {
		return err
	}

	log.Info("job posting updated",
		zap.String(logger.FieldJobID, jobID.String()),
		zap.Bool("accepting_applications", opts.accepting),
	)
	state := "closed"
	if opts.accepting {
		state = "open"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Job posting %s is now %s\n", jobID, state)
	return nil
}
