package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/logger"
	"github.com/jonathan/devmatch/internal/types"
)

// ProfileStore supplies developer profiles. A missing profile is (nil, nil).
type ProfileStore interface {
	GetDeveloperProfile(ctx context.Context, developerID uuid.UUID) (*types.DeveloperProfile, error)
}

// JobStore supplies the jobs a developer may still swipe on: open, accepting
// applications and not already in any of the developer's application lists.
type JobStore interface {
	ListEligibleJobs(ctx context.Context, developerID uuid.UUID, now time.Time) ([]types.JobPosting, error)
}

// Driver builds a developer's ranked job deck from the profile and job stores.
type Driver struct {
	profiles ProfileStore
	jobs     JobStore
	logger   *zap.Logger
	opts     RankOptions
}

// NewDriver creates a Driver. A nil logger disables logging.
func NewDriver(profiles ProfileStore, jobs JobStore, logger *zap.Logger, opts RankOptions) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		profiles: profiles,
		jobs:     jobs,
		logger:   logger,
		opts:     opts,
	}
}

// Deck is the result of building job cards.
type Deck struct {
	Cards []types.JobCard
	// Scored is false when ranking degraded and Cards are in fetch order.
	Scored bool
}

// JobCards fetches the eligible jobs and the developer's profile and returns the cards
// ordered by match score. If the profile cannot be loaded the cards are returned
// unscored in fetch order; only a failure to list jobs is an error.
func (d *Driver) JobCards(ctx context.Context, developerID uuid.UUID, now time.Time) (*Deck, error) {
	jobs, err := d.jobs.ListEligibleJobs(ctx, developerID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible jobs: %w", err)
	}

	log := d.logger.With(zap.String(logger.FieldDeveloperID, developerID.String()), zap.Int("jobs", len(jobs)))

	profile, err := d.profiles.GetDeveloperProfile(ctx, developerID)
	if err != nil {
		log.Warn("profile lookup failed, returning unranked jobs", zap.Error(err))
		return unscoredDeck(jobs), nil
	}
	if profile == nil {
		log.Info("developer profile not found, returning unranked jobs")
		return unscoredDeck(jobs), nil
	}

	scored, err := RankJobs(ctx, profile, jobs, d.opts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn("ranking failed, returning unranked jobs", zap.Error(err))
		return unscoredDeck(jobs), nil
	}

	cards := make([]types.JobCard, len(scored))
	for i, s := range scored {
		score := s.Score
		cards[i] = types.JobCard{JobPosting: s.Job, MatchScore: &score}
		if d.opts.Explain {
			breakdown := s.Breakdown
			cards[i].Breakdown = &breakdown
		}
	}
	log.Debug("ranked job cards")
	return &Deck{Cards: cards, Scored: true}, nil
}

// WithExplain returns a copy of the driver that attaches score breakdowns.
func (d *Driver) WithExplain(explain bool) *Driver {
	clone := *d
	clone.opts.Explain = explain
	return &clone
}

func unscoredDeck(jobs []types.JobPosting) *Deck {
	cards := make([]types.JobCard, len(jobs))
	for i, job := range jobs {
		cards[i] = types.JobCard{JobPosting: job}
	}
	return &Deck{Cards: cards, Scored: false}
}
