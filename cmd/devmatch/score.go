package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/devmatch/internal/ingestion"
	"github.com/jonathan/devmatch/internal/observability"
	"github.com/jonathan/devmatch/internal/ranking"
	"github.com/jonathan/devmatch/internal/types"
)

type scoreOptions struct {
	profilePath string
	jobPath     string
	explain     bool
	jsonOutput  bool
}

type scoreOutput struct {
	Score     int                  `json:"score"`
	Breakdown types.MatchBreakdown `json:"breakdown"`
}

func newScoreCmd() *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one developer profile against one job posting",
		Long:  "Loads a developer profile and a job posting (JSON or YAML) and prints their match score.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "Path to the developer profile (required)")
	cmd.Flags().StringVarP(&opts.jobPath, "job", "j", "", "Path to the job posting (required)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Print the per-factor breakdown")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	markRequired(cmd, "profile", "job")
	return cmd
}

func runScore(cmd *cobra.Command, opts *scoreOptions) error {
	profile, _, err := ingestion.LoadProfile(opts.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	job, _, err := ingestion.LoadJob(opts.jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	breakdown, err := ranking.ScoreBreakdown(profile, job)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOutput:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scoreOutput{Score: breakdown.Total(), Breakdown: breakdown})
	case opts.explain:
		p := observability.NewPrinter(out)
		p.PrintProfile(profile)
		p.PrintBreakdown(job, breakdown)
	default:
		_, _ = fmt.Fprintf(out, "Score: %d\n", breakdown.Total())
	}
	return nil
}
