// Package types provides type definitions for structured data used throughout the smart-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation is the coarse tier derived from the overall fit score.
type Recommendation string

// Recommendation tiers, from best to worst.
const (
	RecommendationStrong   Recommendation = "strong"
	RecommendationGood     Recommendation = "good"
	RecommendationModerate Recommendation = "moderate"
	RecommendationWeak     Recommendation = "weak"
)

// ScoreBreakdown holds the five weighted sub-scores, each 0-100.
type ScoreBreakdown struct {
	SkillMatch      int `json:"skill_match"`
	ExperienceMatch int `json:"experience_match"`
	LocationMatch   int `json:"location_match"`
	SalaryMatch     int `json:"salary_match"`
	CultureFit      int `json:"culture_fit"`
}

// MatchResult is the output of scoring one candidate against one job.
// It is computed on demand and never mutated after creation.
type MatchResult struct {
	CandidateID    string         `json:"candidate_id"`
	JobID          string         `json:"job_id"`
	OverallScore   int            `json:"overall_score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Strengths      []string       `json:"strengths"`
	Gaps           []string       `json:"gaps"`
	Recommendation Recommendation `json:"recommendation"`
}
