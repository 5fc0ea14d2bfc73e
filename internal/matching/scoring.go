package matching

import (
	"math"
	"strings"

	"github.com/jonathan/smart-match/internal/types"
)

// Skill sub-score split between required and preferred skills.
const (
	requiredSkillPortion  = 70.0
	preferredSkillPortion = 30.0
)

// Experience penalties. Overqualification is penalized much less harshly
// than underqualification, hence the 70 floor on the excess branch.
const (
	experienceDeficitPenalty = 15.0
	experienceExcessPenalty  = 5.0
	experienceExcessFloor    = 70.0
)

// Location scores by precedence.
const (
	locationRemoteScore    = 100
	locationUnknownScore   = 50
	locationExactScore     = 100
	locationSubstringScore = 80
	locationRegionScore    = 60
	locationMismatchScore  = 30
)

// Salary scoring constants. An expectation above the posted range is
// penalized twice as steeply as one below it.
const (
	salaryNeutralScore       = 75
	salaryDeficitFloor       = 50.0
	salaryExcessFloor        = 30.0
	salaryExcessPenaltyRatio = 2.0
)

// Culture fit additive terms on top of the base.
const (
	cultureBaseScore   = 70
	cultureModeBonus   = 15
	cultureHybridBonus = 10
	cultureTitleBonus  = 15
	cultureMaxScore    = 100
)

// skillScoreDetail carries the matched and missing skill lists alongside the
// skill sub-score for later explanation text.
type skillScoreDetail struct {
	Score           int
	MatchedSkills   []string
	MissingRequired []string
}

// computeSkillScore scores skill fit, weighting required skills at 70% and
// preferred skills at 30%. A job that lists no skills in a category grants
// that category's full portion by default.
func computeSkillScore(candidate *types.Candidate, job *types.Job) skillScoreDetail {
	candidateSkills := NormalizeSkillSet(candidate.Skills)
	required := normalizeUnique(job.RequiredSkills)
	preferred := normalizeUnique(job.PreferredSkills)

	matched := make([]string, 0, len(required)+len(preferred))
	missing := make([]string, 0)

	matchedRequired := 0
	for _, skill := range required {
		if candidateSkills[skill] {
			matchedRequired++
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	matchedPreferred := 0
	for _, skill := range preferred {
		if candidateSkills[skill] {
			matchedPreferred++
			matched = append(matched, skill)
		}
	}

	requiredScore := requiredSkillPortion
	if len(required) > 0 {
		requiredScore = float64(matchedRequired) / float64(len(required)) * requiredSkillPortion
	}
	preferredScore := preferredSkillPortion
	if len(preferred) > 0 {
		preferredScore = float64(matchedPreferred) / float64(len(preferred)) * preferredSkillPortion
	}

	return skillScoreDetail{
		Score:           roundScore(requiredScore + preferredScore),
		MatchedSkills:   matched,
		MissingRequired: missing,
	}
}

// computeExperienceScore penalizes deviation from the job's experience band.
// Within the band (inclusive) the score is 100.
func computeExperienceScore(candidate *types.Candidate, job *types.Job) int {
	years := candidate.YearsOfExperience
	if years < job.MinExperience {
		deficit := job.MinExperience - years
		return roundScore(math.Max(0, 100-experienceDeficitPenalty*deficit))
	}
	if maxYears := job.EffectiveMaxExperience(); years > maxYears {
		excess := years - maxYears
		return roundScore(math.Max(experienceExcessFloor, 100-experienceExcessPenalty*excess))
	}
	return 100
}

// computeLocationScore scores location fit with remote-first precedence:
// remote on either side fully satisfies location regardless of address.
func computeLocationScore(candidate *types.Candidate, job *types.Job) int {
	if job.IsRemote || candidate.PreferredWorkType == types.WorkTypeRemote {
		return locationRemoteScore
	}

	candidateLoc := strings.ToLower(strings.TrimSpace(candidate.Location))
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
	if candidateLoc == "" || jobLoc == "" {
		return locationUnknownScore
	}
	if candidateLoc == jobLoc {
		return locationExactScore
	}
	// Handles "san francisco" vs "san francisco, ca".
	if strings.Contains(candidateLoc, jobLoc) || strings.Contains(jobLoc, candidateLoc) {
		return locationSubstringScore
	}
	if regionToken(candidateLoc) == regionToken(jobLoc) {
		return locationRegionScore
	}
	return locationMismatchScore
}

// regionToken returns the trailing comma-delimited token of a location
// string, interpreted as the state or region.
func regionToken(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// computeSalaryScore compares the candidate's expectation against the job's
// posted range. Missing data on either side yields a neutral score.
func computeSalaryScore(candidate *types.Candidate, job *types.Job) int {
	if candidate.SalaryExpectation == nil || job.SalaryRangeMin == nil || job.SalaryRangeMax == nil {
		return salaryNeutralScore
	}

	expectation := *candidate.SalaryExpectation
	rangeMin := *job.SalaryRangeMin
	rangeMax := *job.SalaryRangeMax

	if expectation >= rangeMin && expectation <= rangeMax {
		return 100
	}
	if expectation < rangeMin {
		percentDeficit := (rangeMin - expectation) / rangeMin * 100
		return roundScore(math.Max(salaryDeficitFloor, 100-percentDeficit))
	}
	percentExcess := (expectation - rangeMax) / rangeMax * 100
	return roundScore(math.Max(salaryExcessFloor, 100-salaryExcessPenaltyRatio*percentExcess))
}

// computeCultureScore is a heuristic proxy combining work-mode alignment and
// role-title similarity. The mode branches are mutually exclusive; the title
// bonus is additive on top of whichever branch fired.
func computeCultureScore(candidate *types.Candidate, job *types.Job) int {
	score := cultureBaseScore

	prefersRemote := candidate.PreferredWorkType == types.WorkTypeRemote
	prefersOnsite := candidate.PreferredWorkType == types.WorkTypeOnsite
	if (prefersRemote && job.IsRemote) || (prefersOnsite && !job.IsRemote) {
		score += cultureModeBonus
	} else if candidate.PreferredWorkType == types.WorkTypeHybrid {
		score += cultureHybridBonus
	}

	role := strings.ToLower(strings.TrimSpace(candidate.CurrentRole))
	title := strings.ToLower(strings.TrimSpace(job.Title))
	if role != "" && title != "" &&
		(strings.Contains(role, title) || strings.Contains(title, role)) {
		score += cultureTitleBonus
	}

	// Current branches top out at exactly 100; the cap guards future terms.
	if score > cultureMaxScore {
		score = cultureMaxScore
	}
	return score
}

// normalizeUnique normalizes a skill list preserving first-seen order and
// dropping duplicates and empties.
func normalizeUnique(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized := NormalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// roundScore applies the engine's single rounding rule (round half up over
// the non-negative score domain).
func roundScore(score float64) int {
	return int(math.Round(score))
}
