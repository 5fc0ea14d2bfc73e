package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/smart-match/internal/types"
)

// Weights for combining the five sub-scores. They sum to 1.0.
const (
	skillWeight      = 0.40
	experienceWeight = 0.25
	locationWeight   = 0.15
	salaryWeight     = 0.10
	cultureWeight    = 0.10
)

// Thresholds for strength and gap derivation.
const (
	skillStrengthThreshold      = 80
	skillGapThreshold           = 60
	experienceStrengthThreshold = 90
	experienceGapThreshold      = 70
	locationStrengthThreshold   = 90
	locationGapThreshold        = 50
	salaryStrengthThreshold     = 90
	salaryGapThreshold          = 60
	cultureStrengthThreshold    = 85
)

// Recommendation tier lower bounds, inclusive.
const (
	strongTierMin   = 85
	goodTierMin     = 70
	moderateTierMin = 55
)

// MatchCandidateToJob computes the fit between one candidate and one job:
// an overall 0-100 score, the five-way breakdown, human-readable strengths
// and gaps, and a recommendation tier. It is pure and never errors.
func MatchCandidateToJob(candidate *types.Candidate, job *types.Job) *types.MatchResult {
	skill := computeSkillScore(candidate, job)
	experience := computeExperienceScore(candidate, job)
	location := computeLocationScore(candidate, job)
	salary := computeSalaryScore(candidate, job)
	culture := computeCultureScore(candidate, job)

	overall := roundScore(
		float64(skill.Score)*skillWeight +
			float64(experience)*experienceWeight +
			float64(location)*locationWeight +
			float64(salary)*salaryWeight +
			float64(culture)*cultureWeight)

	strengths, gaps := deriveStrengthsAndGaps(skill, experience, location, salary, culture)

	return &types.MatchResult{
		CandidateID:  candidate.ID,
		JobID:        job.ID,
		OverallScore: overall,
		Breakdown: types.ScoreBreakdown{
			SkillMatch:      skill.Score,
			ExperienceMatch: experience,
			LocationMatch:   location,
			SalaryMatch:     salary,
			CultureFit:      culture,
		},
		Strengths:      strengths,
		Gaps:           gaps,
		Recommendation: recommendationFor(overall),
	}
}

// deriveStrengthsAndGaps applies the fixed-order, independent threshold
// checks. The checks are not mutually exclusive.
func deriveStrengthsAndGaps(skill skillScoreDetail, experience, location, salary, culture int) ([]string, []string) {
	strengths := make([]string, 0, 5)
	gaps := make([]string, 0, 4)

	if skill.Score >= skillStrengthThreshold {
		strengths = append(strengths, "Strong skill alignment")
	}
	if skill.Score < skillGapThreshold {
		if len(skill.MissingRequired) > 0 {
			gaps = append(gaps, fmt.Sprintf("Missing key skills: %s", strings.Join(skill.MissingRequired, ", ")))
		} else {
			gaps = append(gaps, "Limited skill overlap")
		}
	}

	if experience >= experienceStrengthThreshold {
		strengths = append(strengths, "Perfect experience level")
	}
	if experience < experienceGapThreshold {
		gaps = append(gaps, "Experience level mismatch")
	}

	if location >= locationStrengthThreshold {
		strengths = append(strengths, "Excellent location match")
	}
	if location < locationGapThreshold {
		gaps = append(gaps, "Location may require relocation")
	}

	if salary >= salaryStrengthThreshold {
		strengths = append(strengths, "Salary expectations aligned")
	}
	if salary < salaryGapThreshold {
		gaps = append(gaps, "Salary expectations may not align")
	}

	if culture >= cultureStrengthThreshold {
		strengths = append(strengths, "Great culture fit")
	}

	return strengths, gaps
}

// recommendationFor buckets an overall score into a recommendation tier.
// Boundaries are inclusive on the lower bound of each tier.
func recommendationFor(overall int) types.Recommendation {
	switch {
	case overall >= strongTierMin:
		return types.RecommendationStrong
	case overall >= goodTierMin:
		return types.RecommendationGood
	case overall >= moderateTierMin:
		return types.RecommendationModerate
	default:
		return types.RecommendationWeak
	}
}
