package types

// MatchBreakdown holds the five independent sub-scores of a match.
type MatchBreakdown struct {
	Skills       int `json:"skills"`
	Experience   int `json:"experience"`
	Role         int `json:"role"`
	Location     int `json:"location"`
	WorkMode     int `json:"work_mode"`
	Compensation int `json:"compensation"`
}

// Total returns the sum of all sub-scores. The total has no upper bound.
func (b MatchBreakdown) Total() int {
	return b.Skills + b.Experience + b.Role + b.Location + b.WorkMode + b.Compensation
}

// ScoredJob pairs a job posting with its computed match score.
type ScoredJob struct {
	Job       JobPosting
	Score     int
	Breakdown MatchBreakdown
}

// JobCard is the job shown to a developer in the swipe deck.
// MatchScore is nil when ranking degraded and the cards are in fetch order.
type JobCard struct {
	JobPosting
	MatchScore *int            `json:"match_score,omitempty"`
	Breakdown  *MatchBreakdown `json:"breakdown,omitempty"`
}
