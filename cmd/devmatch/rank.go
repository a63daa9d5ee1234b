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

type rankOptions struct {
	profilePath string
	jobsPath    string
	workers     int
	limit       int
	explain     bool
	jsonOutput  bool
}

func newRankCmd() *cobra.Command {
	opts := &rankOptions{}
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a list of job postings for a developer profile",
		Long:  "Scores every job in a JSON or YAML list against a developer profile and prints them highest score first. Ties keep file order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "Path to the developer profile (required)")
	cmd.Flags().StringVarP(&opts.jobsPath, "jobs", "j", "", "Path to the job posting list (required)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Concurrent scorers (0 uses GOMAXPROCS)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 5, "Jobs to print (0 prints all)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Include per-factor breakdowns in JSON output")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the ranked cards as JSON")
	markRequired(cmd, "profile", "jobs")
	return cmd
}

func runRank(cmd *cobra.Command, opts *rankOptions) error {
	profile, _, err := ingestion.LoadProfile(opts.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	jobs, _, err := ingestion.LoadJobs(opts.jobsPath)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	scored, err := ranking.RankJobs(cmd.Context(), profile, jobs, ranking.RankOptions{
		Workers: opts.workers,
		Explain: opts.explain,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.jsonOutput {
		observability.NewPrinter(out).WithLimit(opts.limit).PrintRankedJobs(scored)
		return nil
	}

	if opts.limit > 0 && len(scored) > opts.limit {
		scored = scored[:opts.limit]
	}
	cards := make([]types.JobCard, len(scored))
	for i, s := range scored {
		score := s.Score
		cards[i] = types.JobCard{JobPosting: s.Job, MatchScore: &score}
		if opts.explain {
			breakdown := s.Breakdown
			cards[i].Breakdown = &breakdown
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}
