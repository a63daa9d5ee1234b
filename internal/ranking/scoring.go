// Package ranking scores job postings against a developer profile and orders job cards by match.
package ranking

import (
	"strings"

	"github.com/jonathan/devmatch/internal/parsing"
	"github.com/jonathan/devmatch/internal/types"
)

// Points awarded by each scoring component
const (
	exactSkillPoints      = 3
	partialSkillPoints    = 1
	experienceFloorPoints = 2
	experienceCeilBonus   = 1
	roleMatchPoints       = 2
	locationPoints        = 2
	workModePoints        = 2
	compensationPoints    = 2
)

// computeSkillsScore sums per-skill points over every required skill.
// devTokens is the union of the developer's normalized skill tokens.
func computeSkillsScore(required types.StringList, devTokens map[string]struct{}) int {
	score := 0
	for _, skill := range required.Values {
		score += skillPoints(parsing.Normalize(skill), devTokens)
	}
	return score
}

// skillPoints scores one required skill: an exact token match beats a substring match.
// Substring matching runs only when no token matches exactly.
func skillPoints(skillTokens []string, devTokens map[string]struct{}) int {
	for _, token := range skillTokens {
		if _, ok := devTokens[token]; ok {
			return exactSkillPoints
		}
	}
	for _, token := range skillTokens {
		for devToken := range devTokens {
			if overlaps(token, devToken) {
				return partialSkillPoints
			}
		}
	}
	return 0
}

// computeExperienceScore awards points for reaching the band floor and a bonus for reaching its ceiling.
// There is no partial credit below the floor.
func computeExperienceScore(years int, level types.ExperienceLevel) int {
	band := level.Band()
	if years < band.Min {
		return 0
	}
	score := experienceFloorPoints
	if band.Max != nil && years >= *band.Max {
		score += experienceCeilBonus
	}
	return score
}

// computeRoleScore is a boolean bonus: any interested-role token overlapping any title token.
func computeRoleScore(roleTokens []string, jobTitle string) int {
	titleTokens := parsing.Normalize(jobTitle)
	for _, role := range roleTokens {
		for _, title := range titleTokens {
			if overlaps(role, title) {
				return roleMatchPoints
			}
		}
	}
	return 0
}

// computeLocationScore matches the job location literally (case-sensitive, no normalization).
func computeLocationScore(preferred types.StringList, location string) int {
	if location == "" || !preferred.Contains(location) {
		return 0
	}
	return locationPoints
}

// computeWorkModeScore requires both sides to be set; two missing modes are not a match.
func computeWorkModeScore(developer, job types.WorkMode) int {
	if !developer.IsSet() || developer != job {
		return 0
	}
	return workModePoints
}

// computeCompensationScore awards points when the expected stipend is inside the salary range.
// Anything that cannot be evaluated scores zero.
func computeCompensationScore(profile *types.DeveloperProfile, job *types.JobPosting) int {
	stipend, ok := profile.Stipend()
	if !ok {
		return 0
	}
	salary, ok := job.Salary()
	if !ok || !salary.Contains(stipend) {
		return 0
	}
	return compensationPoints
}

// overlaps reports whether either token contains the other.
// Short stems make this coarse (a one-letter token matches widely); that is kept as is.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
