package ranking

import (
	"github.com/jonathan/devmatch/internal/parsing"
	"github.com/jonathan/devmatch/internal/types"
)

// Matcher scores jobs for one developer. The profile's token sets are computed
// once; a Matcher is read-only afterwards and safe for concurrent use.
type Matcher struct {
	profile    *types.DeveloperProfile
	devTokens  map[string]struct{}
	roleTokens []string
}

// NewMatcher prepares a Matcher for the given profile.
// A nil profile is reported as *types.InvalidInputError.
func NewMatcher(profile *types.DeveloperProfile) (*Matcher, error) {
	if profile == nil {
		return nil, &types.InvalidInputError{Field: "profile", Reason: "profile is nil"}
	}

	var roleTokens []string
	for _, role := range profile.JobRolesInterested.Values {
		roleTokens = append(roleTokens, parsing.Normalize(role)...)
	}

	return &Matcher{
		profile:    profile,
		devTokens:  parsing.TokenSet(profile.Skills.Values...),
		roleTokens: roleTokens,
	}, nil
}

// Breakdown computes the five sub-scores for job. It never fails; missing or
// malformed fields contribute zero.
func (m *Matcher) Breakdown(job *types.JobPosting) types.MatchBreakdown {
	return types.MatchBreakdown{
		Skills:       computeSkillsScore(job.RequiredSkills, m.devTokens),
		Experience:   computeExperienceScore(m.profile.YearsOfExperience, job.ExperienceLevel),
		Role:         computeRoleScore(m.roleTokens, job.JobTitle),
		Location:     computeLocationScore(m.profile.PreferredLocations, job.Location),
		WorkMode:     computeWorkModeScore(m.profile.WorkMode, job.WorkMode),
		Compensation: computeCompensationScore(m.profile, job),
	}
}

// Score returns the total match score of job.
func (m *Matcher) Score(job *types.JobPosting) int {
	return m.Breakdown(job).Total()
}

// ScoreBreakdown computes the sub-scores of one (profile, job) pair.
// A nil profile or job is reported as *types.InvalidInputError.
func ScoreBreakdown(profile *types.DeveloperProfile, job *types.JobPosting) (types.MatchBreakdown, error) {
	if job == nil {
		return types.MatchBreakdown{}, &types.InvalidInputError{Field: "job", Reason: "job is nil"}
	}
	m, err := NewMatcher(profile)
	if err != nil {
		return types.MatchBreakdown{}, err
	}
	return m.Breakdown(job), nil
}

// Score computes the integer match score of one (profile, job) pair.
// The score is always >= 0 and has no upper bound.
func Score(profile *types.DeveloperProfile, job *types.JobPosting) (int, error) {
	b, err := ScoreBreakdown(profile, job)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}
