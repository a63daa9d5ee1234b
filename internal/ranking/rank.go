package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/devmatch/internal/types"
)

// RankOptions controls how a job list is scored.
type RankOptions struct {
	// Workers bounds the number of jobs scored concurrently. Zero means GOMAXPROCS.
	Workers int `validate:"gte=0,lte=256"`
	// Explain attaches the per-factor breakdown to each job card.
	Explain bool
}

// Validate validates the RankOptions using the validator.
func (o RankOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

func (o RankOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// RankJobs scores every job for profile and returns them ordered by score, highest first.
// Jobs are scored concurrently; scoring is pure, so the result does not depend on scheduling.
// Ties keep their input order. The only errors are invalid input and context cancellation.
func RankJobs(ctx context.Context, profile *types.DeveloperProfile, jobs []types.JobPosting, opts RankOptions) ([]types.ScoredJob, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rank options: %w", err)
	}
	matcher, err := NewMatcher(profile)
	if err != nil {
		return nil, err
	}

	scored := make([]types.ScoredJob, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			breakdown := matcher.Breakdown(&jobs[i])
			scored[i] = types.ScoredJob{
				Job:       jobs[i],
				Score:     breakdown.Total(),
				Breakdown: breakdown,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking interrupted: %w", err)
	}

	SortByScore(scored)
	return scored, nil
}

// SortByScore orders scored jobs by descending score, keeping the relative order of ties.
func SortByScore(scored []types.ScoredJob) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
